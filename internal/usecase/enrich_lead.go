package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	websiteFetchTimeout = 5 * time.Second
	websiteContentCap   = 3000
	enrichUserAgent     = "Mozilla/5.0 (compatible; LeadMapr/1.0)"
)

var (
	scriptPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	stylePattern  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagPattern    = regexp.MustCompile(`<[^>]+>`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

type EnrichLeadInput struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

type EnrichLeadOutput struct {
	Summary *string `json:"summary"`
}

// EnrichLeadUseCase fetches a lead's website and asks the summary provider
// for a short description. Enrichment is decorative: every failure path
// returns a nil summary, never an error.
type EnrichLeadUseCase struct {
	Summaries SummaryProvider // optional; nil disables enrichment
	HTTP      *http.Client
}

func NewEnrichLeadUseCase(summaries SummaryProvider) *EnrichLeadUseCase {
	return &EnrichLeadUseCase{
		Summaries: summaries,
		HTTP:      &http.Client{Timeout: websiteFetchTimeout},
	}
}

func (uc *EnrichLeadUseCase) Execute(ctx context.Context, input EnrichLeadInput) (*EnrichLeadOutput, error) {
	if input.Website == "" || uc.Summaries == nil {
		return &EnrichLeadOutput{}, nil
	}

	content, err := uc.fetchWebsiteContent(ctx, input.Website)
	if err != nil {
		log.Printf("[ENRICH] failed to fetch %s: %v", input.Website, err)
		return &EnrichLeadOutput{}, nil
	}
	if content == "" {
		return &EnrichLeadOutput{}, nil
	}

	summary, err := uc.Summaries.Summarize(ctx, input.Name, content)
	if err != nil {
		log.Printf("[ENRICH] summary failed for %s: %v", input.Name, err)
		return &EnrichLeadOutput{}, nil
	}
	if summary == "" {
		return &EnrichLeadOutput{}, nil
	}

	return &EnrichLeadOutput{Summary: &summary}, nil
}

func (uc *EnrichLeadUseCase) fetchWebsiteContent(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", enrichUserAgent)

	resp, err := uc.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("website returned status %d", resp.StatusCode)
	}

	html, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	return stripHTML(string(html)), nil
}

// stripHTML is a crude tag stripper. Good enough for feeding a summarizer;
// we are not a browser.
func stripHTML(html string) string {
	text := scriptPattern.ReplaceAllString(html, "")
	text = stylePattern.ReplaceAllString(text, "")
	text = tagPattern.ReplaceAllString(text, " ")
	text = spacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if len(text) > websiteContentCap {
		// Cut on a rune boundary so the cap never splits a UTF-8 sequence.
		cut := websiteContentCap
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}
