package utils

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"kisekae_server/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 家族の誕生日は過去のクライアント都合で YYYY/MM/DD も受ける
	v.RegisterValidation("birthday", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if _, err := time.Parse("2006-01-02", s); err == nil {
			return true
		}
		_, err := time.Parse("2006/01/02", s)
		return err == nil
	})
	return v
}

// validator のタグ -> アプリケーション独自のエラーコード
var errorCodes = map[string]string{
	"required": "E001_INVALID_TYPE",
	"min":      "E002_TOO_SMALL",
	"max":      "E003_TOO_BIG",
	"datetime": "E004_INVALID_STRING",
	"birthday": "E004_INVALID_STRING",
	"oneof":    "E005_INVALID_ENUM",
}

// validator のタグ -> 日本語エラーメッセージ
var errorMessages = map[string]string{
	"required": "入力形式が正しくありません。",
	"min":      "入力値が不足しています。",
	"max":      "入力値が大きすぎます。",
	"datetime": "文字列の形式が正しくありません。",
	"birthday": "文字列の形式が正しくありません。",
	"oneof":    "選択肢として不正な値です。",
}

// ValidateStruct checks a request DTO and returns per-field details in
// the shared {code, message} shape, or nil when the input is valid.
func ValidateStruct(req interface{}) map[string][]models.FieldErrorDetail {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]models.FieldErrorDetail{
			"_errors": {{Code: "E999_UNKNOWN", Message: "不正な入力です。"}},
		}
	}

	details := map[string][]models.FieldErrorDetail{}
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		code, okCode := errorCodes[fe.Tag()]
		if !okCode {
			code = "E999_UNKNOWN"
		}
		message, okMsg := errorMessages[fe.Tag()]
		if !okMsg {
			message = "不正な入力です。"
		}
		details[field] = append(details[field], models.FieldErrorDetail{Code: code, Message: message})
	}
	return details
}

// fieldPath turns "SaveProfileRequest.Family[0].Birthday" into
// "family[0].birthday" to match the JSON field names clients sent.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:] // drop the struct name
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}

// NormalizeBirthday converts the accepted slash form to the canonical
// YYYY-MM-DD storage format.
func NormalizeBirthday(birthday string) string {
	return strings.ReplaceAll(birthday, "/", "-")
}
