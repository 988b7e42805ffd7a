package notify

import (
	"bytes"
	"strings"
	"text/template"
	"time"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

const (
	noFormData    = "No additional form data provided."
	notAvailable  = "N/A"
	unknownName   = "Unknown"
	displayLayout = "2 January 2006, 03:04 PM"
)

// istZone is Asia/Kolkata. India has no daylight saving, so a fixed offset is exact
// and does not depend on tzdata being installed.
var istZone = time.FixedZone("IST", 5*60*60+30*60)

// Notification is the channel-neutral form of an operator alert.
type Notification struct {
	To           string `json:"email"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	Phone        string `json:"phone"`
	RequestID    string `json:"request_id"`
}

var messageTemplate = template.Must(template.New("lead").Parse(`🚨 NEW SAFETY CALL REQUEST - NICSAN INSURANCE

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

📋 REQUEST DETAILS:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
• Request ID: {{.RequestID}}
• Product: {{.ProductName}}
• Submitted: {{.Submitted}}

👤 CUSTOMER INFORMATION:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
• Name: {{.Name}}
• Phone: {{.Phone}}
• Email: {{.Email}}

📊 FORM DATA:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
{{if .FormData}}{{range $i, $e := .FormData}}{{if $i}}
{{end}}• {{$e.Key}}: {{$e.Value}}{{end}}{{else}}` + noFormData + `{{end}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

⚠️  ACTION REQUIRED: Please contact the customer within 24 hours to schedule the safety call.

Best regards,
Nicsan Insurance Team
📧 {{.Contact}}
📞 080-996655`))

type messageData struct {
	RequestID   string
	ProductName string
	Submitted   string
	Name        string
	Phone       string
	Email       string
	FormData    entity.FormData
	Contact     string
}

// FormatTimestamp renders t in India Standard Time.
func FormatTimestamp(t time.Time) string {
	return t.In(istZone).Format(displayLayout)
}

// Subject is the mail subject line for a lead about productName.
func Subject(productName string) string {
	return "New Safety Call Request - " + productName
}

// productLabel is the product line shown in the message when no name was resolved.
func productLabel(n entity.LeadNotification) string {
	if n.ProductName != "" {
		return n.ProductName
	}
	if n.Lead.ProductID != nil {
		return "Unknown Product"
	}
	return "General Inquiry"
}

// Phone picks the best phone number known for the lead.
func Phone(lead entity.Lead) string {
	if p := strings.TrimSpace(lead.PhoneNumber); p != "" {
		return p
	}
	if p := strings.TrimSpace(lead.FormData.First("phone", "Phone No.")); p != "" {
		return p
	}
	return entity.NotProvided
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return entity.NotProvided
	}
	return s
}

// FormatMessage renders the plain-text operator alert for a stored lead.
func FormatMessage(n entity.LeadNotification, contact string) string {
	lead := n.Lead
	data := messageData{
		RequestID:   lead.ID,
		ProductName: productLabel(n),
		Submitted:   FormatTimestamp(lead.CreatedAt),
		Name:        orNotProvided(lead.CustomerName),
		Phone:       Phone(lead),
		Email:       orNotProvided(lead.Email),
		FormData:    lead.FormData.Presented(),
		Contact:     contact,
	}
	if data.RequestID == "" {
		data.RequestID = notAvailable
	}

	var buf bytes.Buffer
	// static template over plain strings
	_ = messageTemplate.Execute(&buf, data)
	return buf.String()
}

// NewNotification builds the channel payload sent to recipient.
func NewNotification(recipient string, n entity.LeadNotification) Notification {
	product := productLabel(n)
	name := n.Lead.CustomerName
	if strings.TrimSpace(name) == "" {
		name = unknownName
	}
	return Notification{
		To:           recipient,
		Subject:      Subject(product),
		Message:      FormatMessage(n, recipient),
		CustomerName: name,
		ProductName:  product,
		Phone:        Phone(n.Lead),
		RequestID:    n.Lead.ID,
	}
}
