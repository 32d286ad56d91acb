package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ReservationConfirmationData feeds the confirmation email template.
type ReservationConfirmationData struct {
	ReservationId uint
	PlayTitle     string
	HallName      string
	ShowTime      string
	Seats         string
	TicketCodes   string
}

// SendReservationConfirmationEmail sends the confirmation asynchronously so
// a slow SMTP server never delays the reservation response.
func SendReservationConfirmationEmail(to string, data ReservationConfirmationData) {
	go func() {
		tmplPath := "templates/reservation_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Reservation confirmation #"+strconv.FormatUint(uint64(data.ReservationId), 10))
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email: %v", err)
		}
	}()
}
