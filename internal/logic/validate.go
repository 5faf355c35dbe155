package logic

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 100
	msgMalformedBody    = "잘못된 요청 형식입니다."
)

var hexValidator = validator.New()

type colorAnalyzeRequest struct {
	Image string `json:"image" binding:"required"`
}

type emotionAnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

type feedbackRequest struct {
	Rating     *int    `json:"rating" binding:"required,min=1,max=5"`
	TargetType string  `json:"targetType" binding:"required,oneof=color_result emotion_map healing_color recommendation"`
	TargetID   string  `json:"targetId" binding:"required"`
	Comment    *string `json:"comment"`
}

// 按字段给出的错误提示
var (
	colorMessages   = map[string]string{"Image": "이미지가 필요합니다."}
	emotionMessages = map[string]string{"Text": "분석할 텍스트가 필요합니다."}
	feedbackFields  = map[string]string{
		"Rating":     "평점은 1-5 사이여야 합니다.",
		"TargetType": "유효하지 않은 피드백 대상입니다.",
		"TargetID":   "대상 ID가 필요합니다.",
	}
)

// bindingMessage 把绑定错误翻译成第一个出错字段的提示, JSON 格式错误返回通用提示
func bindingMessage(err error, messages map[string]string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := messages[verrs[0].Field()]; ok {
			return msg
		}
	}
	return msgMalformedBody
}

// stripDataURL 去掉 "data:image/png;base64," 一类前缀
func stripDataURL(image string) string {
	if idx := strings.Index(image, ","); idx >= 0 {
		image = image[idx+1:]
	}
	return strings.TrimSpace(image)
}

// normalizeHex 统一为大写 #RRGGBB
func normalizeHex(raw string) (string, bool) {
	hex := strings.ToUpper(strings.TrimSpace(raw))
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if err := hexValidator.Var(hex, "len=7,hexcolor"); err != nil {
		return "", false
	}
	return hex, true
}

// parseLimit 非数字或小于 1 时用默认值, 上限 100
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit < 1 {
		return defaultHistoryLimit
	}
	return min(limit, maxHistoryLimit)
}
