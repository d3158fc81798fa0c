package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/leadmapr/leadmapr/internal/entity"
)

// DefaultMessageTemplate is used when the caller supplies no template.
// {{business_name}} is substituted per lead.
const DefaultMessageTemplate = "Hi {{business_name}}, I help local businesses get more customers through Google visibility. Would you like to explore this?"

const whatsappHeader = "Business Name\tPhone\tWhatsApp Link"

// generateWhatsApp renders a tab-separated outreach sheet. Leads without a
// phone number are silently dropped: there is nothing to message.
func generateWhatsApp(leads []entity.Lead, messageTemplate string) []byte {
	template := messageTemplate
	if template == "" {
		template = DefaultMessageTemplate
	}

	lines := []string{whatsappHeader}
	for _, lead := range leads {
		if !lead.HasPhone() {
			continue
		}

		message := strings.ReplaceAll(template, "{{business_name}}", lead.Name)
		link := fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(*lead.Phone), url.QueryEscape(message))
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s", lead.Name, *lead.Phone, link))
	}

	return []byte(strings.Join(lines, "\n"))
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
