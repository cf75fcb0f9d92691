package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "kind" or "detail").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "no_match":
			return "値が期待される形に一致しません"
		case "parse_error":
			if d := data["detail"]; d != "" {
				return "解析エラー: " + d
			}
			return "解析エラー"
		case "unknown_kind":
			if k := data["kind"]; k != "" {
				return "未知の種別です: " + k
			}
			return "未知の種別です"
		case "bad_schema":
			return "スキーマ記述が不正です"
		}
	default: // "en"
		switch code {
		case "no_match":
			return "value does not match the expected shape"
		case "parse_error":
			if d := data["detail"]; d != "" {
				return "parse error: " + d
			}
			return "parse error"
		case "unknown_kind":
			if k := data["kind"]; k != "" {
				return "unknown kind: " + k
			}
			return "unknown kind"
		case "bad_schema":
			return "invalid schema description"
		}
	}
	return code
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
