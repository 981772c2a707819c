// Package page renders one static landing page per lead.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"leadpage-engine/internal/domain"
)

// Renderer turns leads into self-contained HTML documents. The clock is
// injected so identical input renders identical output under test.
type Renderer struct {
	ContactEmail string
	Language     string
	Now          func() time.Time
}

type faqItem struct {
	Question string
	Answer   string
}

type pageData struct {
	Lead         domain.Lead
	Language     string
	Tagline      string
	CreatedAt    string
	PrimaryCTA   template.URL
	SecondaryCTA template.URL
	FAQ          []faqItem
}

// Render produces the full HTML document for one lead. Every lead field
// passes through html/template's contextual escaping, so reserved
// characters in the source can never break the markup.
func (r Renderer) Render(lead domain.Lead) ([]byte, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	lang := r.Language
	if lang == "" {
		lang = "de"
	}

	data := pageData{
		Lead:         lead,
		Language:     lang,
		Tagline:      fmt.Sprintf("%s in %s: %s", lead.Service, lead.City, lead.Offer),
		CreatedAt:    now().UTC().Format("02.01.2006"),
		PrimaryCTA:   r.mailto(lead.BusinessName + " Landingpage"),
		SecondaryCTA: r.mailto(lead.BusinessName + " Projekt"),
		FAQ:          buildFAQ(lead),
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page for %q: %w", lead.Slug, err)
	}
	return buf.Bytes(), nil
}

func (r Renderer) mailto(subject string) template.URL {
	u := url.URL{
		Scheme:   "mailto",
		Opaque:   r.ContactEmail,
		RawQuery: "subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20"),
	}
	return template.URL(u.String())
}

func buildFAQ(lead domain.Lead) []faqItem {
	return []faqItem{
		{
			Question: fmt.Sprintf("Wie kann %s mehr %s-Anfragen in %s gewinnen?",
				lead.BusinessName, strings.ToLower(lead.Service), lead.City),
			Answer: fmt.Sprintf("Wir stellen die Stärken von %s heraus, zeigen Referenzen und bauen klare Conversion-Elemente ein, damit Interessenten sofort Kontakt aufnehmen.",
				lead.BusinessName),
		},
		{
			Question: fmt.Sprintf("Was bedeutet das Angebot \"%s\" konkret?", lead.Offer),
			Answer: fmt.Sprintf("Wir entwickeln eine individuelle Landingpage, die das %s für %s erklärt und Besuchern einen einfachen nächsten Schritt bietet.",
				lead.Offer, lead.BusinessName),
		},
		{
			Question: "Wie schnell geht die Umsetzung?",
			Answer:   "In der Regel liefern wir innerhalb weniger Tage eine veröffentlichbare Seite und optimieren anschließend anhand echter Daten.",
		},
	}
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>{{.Lead.BusinessName}} – {{.Lead.Service}} in {{.Lead.City}}</title>
  <style>
    :root { font-family: 'Inter', Arial, sans-serif; color: #111827; background: #f9fafb; }
    body { max-width: 900px; margin: 0 auto; padding: 24px; line-height: 1.6; }
    h1, h2, h3 { color: #0f172a; margin-bottom: 8px; }
    .hero { background: linear-gradient(120deg, #e0f2fe, #ecfeff); padding: 32px; border-radius: 16px; margin-bottom: 24px; }
    .tagline { font-size: 1.1rem; margin-bottom: 16px; }
    .cta { display: inline-block; padding: 12px 18px; background: #2563eb; color: #fff; border-radius: 12px; text-decoration: none; font-weight: 600; }
    .cta.secondary { background: #0ea5e9; }
    .pain, .faq { background: #fff; border-radius: 16px; padding: 24px; box-shadow: 0 10px 30px rgba(15, 23, 42, 0.05); margin-bottom: 24px; }
    ul { padding-left: 20px; }
    .faq-item { margin-bottom: 14px; }
    footer { display: flex; justify-content: space-between; align-items: center; background: #f1f5f9; padding: 16px; border-radius: 12px; }
    @media (max-width: 640px) { footer { flex-direction: column; align-items: flex-start; gap: 12px; } }
  </style>
</head>
<body>
  <section class="hero">
    <h1>{{.Lead.BusinessName}} – {{.Lead.Service}} in {{.Lead.City}}</h1>
    <p class="tagline">{{.Tagline}}</p>
    <a class="cta" href="{{.PrimaryCTA}}">Jetzt Beratung sichern</a>
  </section>
  <section class="pain">
    <h2>Wir lösen: {{.Lead.PainPoint}}</h2>
    <p>Viele {{.Lead.Service}}-Teams in {{.Lead.City}} verlieren täglich potenzielle Kunden, weil ihre Website nicht überzeugt. {{.Lead.BusinessName}} bekommt eine Seite, die Vertrauen aufbaut, Fragen beantwortet und immer auf einen klaren CTA führt.</p>
    <ul>
      <li>Storytelling rund um {{.Lead.BusinessName}}</li>
      <li>Lokale Beweise aus {{.Lead.City}}</li>
      <li>Schlanke Kontaktwege für mehr Abschlüsse</li>
    </ul>
  </section>
  <section class="faq">
    <h2>Häufige Fragen</h2>
    {{range .FAQ}}<div class="faq-item">
      <h3>{{.Question}}</h3>
      <p>{{.Answer}}</p>
    </div>
    {{end}}</section>
  <footer>
    <p>Seite für {{.Lead.BusinessName}} erstellt am {{.CreatedAt}}.</p>
    <a class="cta secondary" href="{{.SecondaryCTA}}">Kostenloses Gespräch anfragen</a>
  </footer>
</body>
</html>
`))
