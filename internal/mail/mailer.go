package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/M-odou/forumassirou-sub000/internal/models"
)

// Mailer sends the registration confirmation carrying the ticket number.
type Mailer interface {
	SendConfirmation(p *models.Participant) error
}

// APIMailer posts to a transactional mail HTTP API (Brevo-compatible
// payload).
type APIMailer struct {
	apiURL string
	apiKey string
	sender string
	client *http.Client
}

func NewAPIMailer(apiURL, apiKey, sender string) *APIMailer {
	return &APIMailer{
		apiURL: apiURL,
		apiKey: apiKey,
		sender: sender,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *APIMailer) SendConfirmation(p *models.Participant) error {
	payload := map[string]interface{}{
		"sender": map[string]string{"email": m.sender, "name": "FORUM-SEC"},
		"to": []map[string]string{
			{"email": p.Email, "name": fmt.Sprintf("%s %s", p.Prenom, p.Nom)},
		},
		"subject": fmt.Sprintf("Votre billet %s", p.NumeroTicket),
		"htmlContent": fmt.Sprintf(
			"<p>Bonjour %s,</p><p>Votre inscription au FORUM-SEC est confirmée.</p><p>Numéro de billet : <strong>%s</strong></p><p>Présentez le QR code de votre badge à l'entrée.</p>",
			p.Prenom, p.NumeroTicket,
		),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}
	return nil
}

type statusWriter interface {
	UpdateEmailStatus(id, status string) error
}

// Notifier wraps a Mailer and records the delivery outcome on the
// participant's statut_email field. Sending is fire-and-forget and never
// blocks or fails the registration.
type Notifier struct {
	mailer Mailer
	store  statusWriter
}

// NewNotifier accepts a nil mailer, in which case confirmations are skipped
// and statut_email stays pending.
func NewNotifier(mailer Mailer, store statusWriter) *Notifier {
	return &Notifier{mailer: mailer, store: store}
}

func (n *Notifier) ConfirmAsync(p *models.Participant) {
	if n == nil || n.mailer == nil {
		return
	}

	participant := *p
	go func() {
		status := models.EmailStatusSent
		if err := n.mailer.SendConfirmation(&participant); err != nil {
			log.Printf("mail: confirmation to %s failed: %v", participant.Email, err)
			status = models.EmailStatusFailed
		}
		if err := n.store.UpdateEmailStatus(participant.ID, status); err != nil {
			log.Printf("mail: recording email status failed: %v", err)
		}
	}()
}
