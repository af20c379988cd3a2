package fraud

import "strings"

// Classifier decide se o motivo de uma rejeição de voucher indica fraude.
// Injetável para que a política seja testável e trocável sem código.
type Classifier interface {
	Fraudulent(reason string) bool
}

// DefaultKeywords é o vocabulário observado nas rejeições reais das
// recepções (espanhol). Sobrescrito por FRAUD_KEYWORDS no ambiente.
func DefaultKeywords() []string {
	return []string{
		"falso",
		"fake",
		"editado",
		"no válido",
		"no valido",
		"no existe",
		"adulterado",
		"clonado",
	}
}

// KeywordClassifier faz matching case-insensitive de substrings.
type KeywordClassifier struct {
	keywords []string
}

func NewKeywordClassifier(keywords []string) *KeywordClassifier {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			normalized = append(normalized, kw)
		}
	}
	return &KeywordClassifier{keywords: normalized}
}

func (c *KeywordClassifier) Fraudulent(reason string) bool {
	reason = strings.ToLower(reason)
	for _, kw := range c.keywords {
		if strings.Contains(reason, kw) {
			return true
		}
	}
	return false
}
