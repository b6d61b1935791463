package forteparser

import (
	"regexp"
	"strings"
	"unicode"

	"fjacquet/budged/internal/models"

	"github.com/cloudflare/ahocorasick"
)

// WalletApplePay is the payment method recorded for Apple Pay purchases.
const WalletApplePay = "APPLE PAY"

var (
	// The second alternative is spelled with Cyrillic letters.
	mccPattern      = regexp.MustCompile(`(?i)(?:MCC|МСС):\s*(\d{4})`)
	receiverPattern = regexp.MustCompile(`Receiver:\s*([\d*]+)`)
)

type bankKeywords struct {
	name     string
	keywords []string
}

// Order matters: the first bank with a keyword present wins.
var banks = []bankKeywords{
	{"Halyk Bank", []string{"JSC Halyk Bank", "Halyk Bank"}},
	{"Kaspi Bank", []string{"Kaspi Bank"}},
	{"Freedom Bank", []string{"Freedom Bank"}},
	{"Jusan Bank", []string{"Jusan Bank"}},
	{"Bereke Bank", []string{"Bereke Bank"}},
	{"BCC", []string{"BCC"}},
}

// bankMatcher finds every bank keyword in one pass and resolves the hits back
// to the bank with the lowest position in banks.
type bankMatcher struct {
	matcher *ahocorasick.Matcher
	owner   []int
}

var defaultBankMatcher = newBankMatcher(banks)

func newBankMatcher(list []bankKeywords) *bankMatcher {
	var patterns [][]byte
	var owner []int
	for i, b := range list {
		for _, kw := range b.keywords {
			patterns = append(patterns, []byte(kw))
			owner = append(owner, i)
		}
	}
	return &bankMatcher{matcher: ahocorasick.NewMatcher(patterns), owner: owner}
}

func (m *bankMatcher) detect(text string) string {
	best := -1
	for _, hit := range m.matcher.MatchThreadSafe([]byte(text)) {
		if b := m.owner[hit]; best < 0 || b < best {
			best = b
		}
	}
	if best < 0 {
		return ""
	}
	return banks[best].name
}

// ParseDetails extracts the structured fields of a details cell. Each search
// is independent except that a merchant is only guessed when no receiver
// account was found.
func ParseDetails(text string) models.Details {
	details := models.Details{Raw: strings.TrimSpace(text)}

	if m := mccPattern.FindStringSubmatch(text); m != nil {
		details.MCC = m[1]
	}

	if strings.Contains(strings.ToUpper(text), WalletApplePay) {
		details.PaymentMethod = WalletApplePay
	}

	details.Bank = defaultBankMatcher.detect(text)

	receiver := receiverPattern.FindStringSubmatch(text)
	if receiver != nil {
		details.ReceiverAccount = receiver[1]
	}

	if receiver == nil {
		if idx := strings.Index(text, ","); idx >= 0 {
			details.Merchant = strings.TrimSpace(text[:idx])
		}
	}

	return details
}

// CleanDetails repairs line-wrap artifacts from the PDF layout. A wrapped
// line break becomes a space, keeping any comma or period before it, runs of
// two or more whitespace characters collapse to one space and the result is
// trimmed. CleanDetails(CleanDetails(s)) == CleanDetails(s).
func CleanDetails(text string) string {
	if text == "" {
		return ""
	}

	runes := []rune(strings.ReplaceAll(text, "\n", " "))
	var b strings.Builder
	b.Grow(len(runes))
	for i := 0; i < len(runes); {
		if !unicode.IsSpace(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j-i >= 2 {
			b.WriteByte(' ')
		} else {
			b.WriteRune(runes[i])
		}
		i = j
	}
	return strings.TrimSpace(b.String())
}
