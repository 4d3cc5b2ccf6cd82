package resolver

import "strings"

const promptTextLimit = 3000

// buildVendorPrompt constrains the model to a bare vendor name or the
// UNKNOWN sentinel, nothing else.
func buildVendorPrompt(rawText string) string {
	text := strings.TrimSpace(rawText)
	if len(text) > promptTextLimit {
		text = text[:promptTextLimit]
	}

	var b strings.Builder
	b.WriteString("You are reading OCR text from a purchase receipt. ")
	b.WriteString("Reply with ONLY the business name of the store or vendor that issued the receipt, on a single line. ")
	b.WriteString("Do not explain. Do not add punctuation. ")
	b.WriteString("If you cannot determine the vendor, reply with exactly " + UnknownSentinel + ".\n\n")
	b.WriteString("Receipt text:\n")
	b.WriteString(text)
	return b.String()
}
