package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// fieldNameTranslations は JSON フィールド名から表示名への対応
var fieldNameTranslations = map[string]string{
	"guess":            "回答",
	"session_attempts": "これまでの回答",
	"game_number":      "ゲーム番号",
	"attempts":         "回答一覧",
	"feedbacks":        "判定一覧",
	"won":              "勝敗",
}

// customMessages は既定の日本語訳を上書きするメッセージ
var customMessages = map[string]string{
	"required": "{0}は必須項目です。",
	"oneof":    "{0}の値が正しくありません。",
	"min":      "{0}は{1}以上で入力してください。",
	"max":      "{0}は{1}以下で入力してください。",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	for tag, msg := range customMessages {
		if err := registerTranslation(tag, msg); err != nil {
			log.Fatal(err)
		}
	}
}

// registerTranslation はタグのメッセージを登録します。{0} は表示名、{1} はタグのパラメータ
func registerTranslation(tag, msg string) error {
	return Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, displayName(fe.Field()), fe.Param())
		return t
	})
}

func displayName(field string) string {
	if name, ok := fieldNameTranslations[field]; ok {
		return name
	}
	return field
}
