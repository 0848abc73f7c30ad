package service

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/apperror"
	"github.com/pveldman/studioadmin/pkg/mailer"
)

// Receipt email subject and body per language. The body takes the client name
// and the company name, in that order.
var (
	mailSubjects = map[string]string{
		"nl": "Uw ontvangstbewijs van %s",
		"fr": "Votre reçu de %s",
		"en": "Your receipt from %s",
		"ar": "إيصالك من %s",
	}
	mailBodies = map[string]string{
		"nl": "Beste %s,\n\nIn bijlage vindt u uw ontvangstbewijs.\n\nMet vriendelijke groeten,\n%s",
		"fr": "Bonjour %s,\n\nVeuillez trouver votre reçu en pièce jointe.\n\nCordialement,\n%s",
		"en": "Dear %s,\n\nPlease find your receipt attached.\n\nKind regards,\n%s",
		"ar": "عزيزي %s،\n\nتجدون الإيصال مرفقاً.\n\nمع أطيب التحيات،\n%s",
	}
)

// MailService emails rendered receipts to clients in the client's language.
type MailService struct {
	receiptRepo     repository.ReceiptRepository
	documentService *DocumentService
	settingsService *SettingsService
	mailer          *mailer.Mailer
}

// NewMailService creates a new mail service
func NewMailService(
	receiptRepo repository.ReceiptRepository,
	documentService *DocumentService,
	settingsService *SettingsService,
	m *mailer.Mailer,
) *MailService {
	return &MailService{
		receiptRepo:     receiptRepo,
		documentService: documentService,
		settingsService: settingsService,
		mailer:          m,
	}
}

// EmailReceipt sends the rendered receipt document to the receipt's client.
// The document is rendered first when no stored copy exists. Missing SMTP
// credentials are a configuration error; a refused delivery is an external
// error. Neither touches the stored receipt.
func (s *MailService) EmailReceipt(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}
	if receipt.Client == nil || receipt.Client.Email == nil || *receipt.Client.Email == "" {
		return apperror.NewBadRequestError("Client has no email address")
	}

	if !s.mailer.IsConfigured() {
		return apperror.NewConfigurationError("SMTP transport is not configured")
	}

	settings, err := s.settingsService.Get(ctx)
	if err != nil {
		return err
	}

	var attachment []byte
	var attachmentName string
	if receipt.DocumentPath != nil {
		if data, err := os.ReadFile(*receipt.DocumentPath); err == nil {
			attachment = data
			attachmentName = fmt.Sprintf("receipt_%s.txt", receipt.Number)
		}
	}
	if attachment == nil {
		artifact, err := s.documentService.RenderReceipt(ctx, receipt.ID)
		if err != nil {
			return err
		}
		attachment = artifact.Data
		attachmentName = artifact.Filename
	}

	lang := receipt.Client.Language
	if lang == "" {
		lang = settings.BaseLanguage
	}
	subject, ok := mailSubjects[lang]
	if !ok {
		subject = mailSubjects["en"]
	}
	body, ok := mailBodies[lang]
	if !ok {
		body = mailBodies["en"]
	}

	msg := mailer.Message{
		To:             *receipt.Client.Email,
		Subject:        fmt.Sprintf(subject, settings.CompanyName),
		Body:           fmt.Sprintf(body, receipt.Client.Name, settings.CompanyName),
		Attachment:     attachment,
		AttachmentName: attachmentName,
	}
	if err := s.mailer.Send(msg); err != nil {
		return apperror.NewExternalError("Failed to send receipt email: " + err.Error())
	}
	return nil
}
