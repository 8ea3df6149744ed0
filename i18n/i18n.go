package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "invalid_key":
			return "キーの型が不正です"
		case "unknown_key":
			return "未知のキーです"
		case "missing_data":
			return "データがありません"
		case "value_mismatch":
			return "代入元の値が一致しません"
		case "unbound_value":
			return "未バインドの値からは代入できません"
		case "invalid_enum":
			return "列挙値が不正です"
		case "invalid_format":
			return "形式が不正です"
		case "duplicate_field":
			return "フィールドキーが重複しています"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "invalid_key":
			return "invalid key type"
		case "unknown_key":
			return "unknown key"
		case "missing_data":
			return "missing data"
		case "value_mismatch":
			return "incompatible value; sub-fields do not match"
		case "unbound_value":
			return "cannot assign from unbound value"
		case "invalid_enum":
			return "invalid enum value"
		case "invalid_format":
			return "invalid format"
		case "duplicate_field":
			return "duplicate field key"
		case "parse_error":
			return "parse error"
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

// T returns the message for code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
