package usecase

import (
	"fmt"
	"html"
	"strings"

	"schilderpro/internal/domain/entities"
	"schilderpro/internal/domain/pricing"
)

// Email copy is Dutch, matching the site. Both bodies are rendered from the
// same pricing.FormatStructured rows so the customer and business views can
// never show different numbers.

func buildCustomerEmail(from, replyTo, to, name string, breakdown entities.Breakdown, quoteRef string) entities.EmailMessage {
	var text strings.Builder
	fmt.Fprintf(&text, "Beste %s,\n\n", name)
	text.WriteString("Bedankt voor uw aanvraag. Hieronder vindt u uw vrijblijvende prijsindicatie:\n\n")
	text.WriteString(pricing.FormatPlainText(breakdown))
	text.WriteString("\nDeze indicatie is gebaseerd op de door u opgegeven hoeveelheden.\n")
	text.WriteString("We nemen binnen één werkdag contact met u op voor een afspraak.\n\n")
	fmt.Fprintf(&text, "Referentie: %s\n\nMet vriendelijke groet,\nSchilderPro\n", quoteRef)

	return entities.EmailMessage{
		From:     from,
		To:       to,
		ReplyTo:  replyTo,
		Subject:  "Uw prijsindicatie van SchilderPro",
		HTMLBody: renderHTMLQuote(fmt.Sprintf("Beste %s,", name), breakdown, quoteRef),
		TextBody: text.String(),
	}
}

func buildBusinessEmail(from, to string, spec entities.JobSpec, breakdown entities.Breakdown, quoteRef string) entities.EmailMessage {
	var text strings.Builder
	text.WriteString("Nieuwe offerteaanvraag\n\n")
	fmt.Fprintf(&text, "Naam: %s\nE-mail: %s\n", spec.Contact.Name, spec.Contact.Email)
	if spec.Contact.Phone != "" {
		fmt.Fprintf(&text, "Telefoon: %s\n", spec.Contact.Phone)
	}
	if spec.Region != "" {
		fmt.Fprintf(&text, "Regio: %s\n", spec.Region)
	}
	if spec.ProjectType != "" {
		fmt.Fprintf(&text, "Projecttype: %s\n", spec.ProjectType)
	}
	text.WriteString("\n")
	text.WriteString(pricing.FormatPlainText(breakdown))
	if spec.Message != "" {
		fmt.Fprintf(&text, "\nBericht van de klant:\n%s\n", spec.Message)
	}
	for _, url := range spec.PhotoURLs {
		fmt.Fprintf(&text, "\nFoto: %s", url)
	}
	fmt.Fprintf(&text, "\n\nReferentie: %s\n", quoteRef)

	return entities.EmailMessage{
		From:     from,
		To:       to,
		Subject:  fmt.Sprintf("Nieuwe offerteaanvraag: %s", spec.Contact.Name),
		HTMLBody: renderHTMLQuote("Nieuwe offerteaanvraag van "+spec.Contact.Name, breakdown, quoteRef),
		TextBody: text.String(),
	}
}

func renderHTMLQuote(heading string, breakdown entities.Breakdown, quoteRef string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	fmt.Fprintf(&sb, "<p>%s</p>", html.EscapeString(heading))
	sb.WriteString(`<table border="0" cellpadding="6" cellspacing="0">`)
	for _, row := range pricing.FormatStructured(breakdown) {
		fmt.Fprintf(&sb, "<tr><td>%s</td><td>%s</td><td align=\"right\">%s</td></tr>",
			html.EscapeString(row.Label),
			html.EscapeString(row.QuantityLabel),
			html.EscapeString(row.SubtotalLabel))
	}
	fmt.Fprintf(&sb, "<tr><td colspan=\"2\"><strong>Totaal (incl. btw)</strong></td><td align=\"right\"><strong>%s</strong></td></tr>",
		html.EscapeString(pricing.FormatEUR(breakdown.Total)))
	sb.WriteString("</table>")
	fmt.Fprintf(&sb, "<p><small>Referentie: %s</small></p>", html.EscapeString(quoteRef))
	sb.WriteString("</body></html>")
	return sb.String()
}
