package service

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"parkingslots/internal/db"
	"parkingslots/internal/entities"
	"parkingslots/internal/logger"
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`<html><body>
<h2>Your parking slot is {{.ID}}</h2>
<ul>
{{if .Covered}}<li>Covered parking</li>{{end}}
{{if .EVCharging}}<li>EV charging available</li>{{end}}
</ul>
</body></html>`))

// SenderService sends allocation receipts by e-mail and SMS in the background.
// A channel without credentials is skipped.
type SenderService struct {
	sendEmail func(toEmail, subject, plain, html string) error
	sendSMS   func(toNumber, body string) error
	log       logger.Logger
	wg        sync.WaitGroup
}

func NewSenderService(sg SendGridConfig, tw TwilioConfig, log logger.Logger) *SenderService {
	if log == nil {
		log = logger.NopLogger{}
	}
	s := &SenderService{log: log}
	if sg.enabled() {
		s.sendEmail = newSendGridEmailer(sg)
	} else {
		log.Warnf("SendGrid credentials not configured, e-mail receipts disabled")
	}
	if tw.enabled() {
		s.sendSMS = newTwilioTexter(tw)
	} else {
		log.Warnf("Twilio credentials not configured, SMS receipts disabled")
	}
	return s
}

func (s *SenderService) NotifyAllocation(slot db.Slot, req entities.AllocationRequest) {
	if req.NotifyEmail != "" && s.sendEmail != nil {
		subject, plain, html := allocationEmail(slot)
		s.async(func() error { return s.sendEmail(req.NotifyEmail, subject, plain, html) }, "e-mail", slot.ID)
	}
	if req.NotifyPhone != "" && s.sendSMS != nil {
		body := allocationSMS(slot)
		s.async(func() error { return s.sendSMS(req.NotifyPhone, body) }, "SMS", slot.ID)
	}
}

// Wait blocks until in-flight receipts have been attempted.
func (s *SenderService) Wait() {
	s.wg.Wait()
}

func (s *SenderService) async(send func() error, channel, slotID string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := send(); err != nil {
			s.log.Errorf("Slot %s was allocated, but the %s receipt failed: %v", slotID, channel, err)
			return
		}
		s.log.Infof("Sent %s receipt for slot %s", channel, slotID)
	}()
}

func allocationEmail(slot db.Slot) (subject, plain, html string) {
	subject = fmt.Sprintf("Your parking slot: %s", slot.ID)
	plain = fmt.Sprintf("You have been assigned parking slot %s.%s", slot.ID, features(slot))

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, slot); err == nil {
		html = buf.String()
	}
	return subject, plain, html
}

func allocationSMS(slot db.Slot) string {
	return fmt.Sprintf("Parking: go to slot %s.%s", slot.ID, features(slot))
}

func features(slot db.Slot) string {
	switch {
	case slot.Covered && slot.EVCharging:
		return " Covered parking • EV charging available."
	case slot.Covered:
		return " Covered parking."
	case slot.EVCharging:
		return " EV charging available."
	}
	return ""
}
