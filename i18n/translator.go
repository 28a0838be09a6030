package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です"
		case "required":
			msg = "必須パラメータが不足しています"
		case "too_small":
			msg = "値が小さすぎます (最小 {min})"
		case "too_big":
			msg = "値が大きすぎます (最大 {max})"
		case "too_short":
			msg = "短すぎます (最小 {min})"
		case "too_long":
			msg = "長すぎます (最大 {max})"
		case "invalid_enum":
			msg = "列挙値が不正です"
		case "overflow":
			msg = "数値が型の範囲を超えています"
		case "parse_error":
			msg = "解析エラー"
		case "duplicate_key":
			msg = "キーが重複しています"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type"
		case "required":
			msg = "mandatory parameter missing"
		case "too_small":
			msg = "value below minimum {min}"
		case "too_big":
			msg = "value above maximum {max}"
		case "too_short":
			msg = "shorter than minimum {min}"
		case "too_long":
			msg = "longer than maximum {max}"
		case "invalid_enum":
			msg = "not a member of the enumeration"
		case "overflow":
			msg = "number does not fit the declared width"
		case "parse_error":
			msg = "parse error"
		case "duplicate_key":
			msg = "duplicate object key"
		}
	}
	if msg == "" {
		return code
	}
	return expand(msg, data)
}

// expand replaces {key} placeholders present in data.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
