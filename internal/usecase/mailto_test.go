package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailtoLink_EncodesSubjectAndBody(t *testing.T) {
	link := MailtoLink("hr@acme.example", "Job Application", "Dear Sir/Madam,\n\nPlease find my CV attached.")
	assert.Equal(t,
		"mailto:hr@acme.example?subject=Job%20Application&body=Dear%20Sir%2FMadam%2C%0A%0APlease%20find%20my%20CV%20attached.",
		link)
}

func TestMailtoLink_SpacesAreNeverPlus(t *testing.T) {
	link := MailtoLink("", "a b", "c d")
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "subject=a%20b")
	assert.Contains(t, link, "body=c%20d")
}
