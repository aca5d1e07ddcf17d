// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/domain/sale"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt renders a committed sale as a PDF receipt. Requires the
// wkhtmltopdf binary on PATH.
func (s *Service) GenerateReceipt(committed *sale.Sale) (*bytes.Buffer, error) {
	htmlContent, err := s.generateHTML(newReceiptData(committed, s.config))
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(true)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ReceiptData represents the data passed to the receipt template. Amounts
// are preformatted strings so the template stays presentation-only.
type ReceiptData struct {
	Folio    int
	Date     string
	Lines    []receiptLine
	Discount string
	Subtotal string
	Tax      string
	Total    string
	Tendered string
	Change   string
	Company  CompanyInfo
}

type receiptLine struct {
	Name      string
	Wholesale bool
	Quantity  int
	UnitPrice string
	Subtotal  string
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

func newReceiptData(committed *sale.Sale, cfg *config.Config) ReceiptData {
	data := ReceiptData{
		Folio:    committed.Folio,
		Date:     committed.Date.Format("January 2, 2006 15:04"),
		Subtotal: committed.Subtotal.StringFixed(2),
		Tax:      committed.Tax.StringFixed(2),
		Total:    committed.Total.StringFixed(2),
		Tendered: committed.Tendered.StringFixed(2),
		Change:   committed.Change.StringFixed(2),
		Company: CompanyInfo{
			Name:    cfg.Company.Name,
			Address: cfg.Company.Address,
			Phone:   cfg.Company.Phone,
			Email:   cfg.Company.Email,
		},
	}

	if committed.Pricing.DiscountTotal.IsPositive() {
		data.Discount = committed.Pricing.DiscountTotal.StringFixed(2)
	}

	for _, line := range committed.Lines {
		data.Lines = append(data.Lines, receiptLine{
			Name:      line.Name,
			Wholesale: line.Wholesale,
			Quantity:  line.Quantity,
			UnitPrice: line.AppliedPrice.StringFixed(2),
			Subtotal:  line.Subtotal.StringFixed(2),
		})
	}

	return data
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Folio}}</title>
    <style>
        body {
            font-family: "Courier New", monospace;
            margin: 0;
            padding: 20px;
            color: #111;
        }
        .header {
            text-align: center;
            border-bottom: 2px solid #111;
            padding-bottom: 10px;
            margin-bottom: 15px;
        }
        .company-name {
            font-size: 20px;
            font-weight: bold;
        }
        .meta {
            margin-bottom: 15px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        th, td {
            text-align: left;
            padding: 4px 6px;
            border-bottom: 1px dashed #999;
        }
        td.num, th.num {
            text-align: right;
        }
        .totals {
            margin-top: 15px;
            width: 50%;
            margin-left: auto;
        }
        .totals td {
            border: none;
        }
        .grand-total {
            font-weight: bold;
            border-top: 2px solid #111;
        }
        .footer {
            margin-top: 25px;
            text-align: center;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-name">{{.Company.Name}}</div>
        {{if .Company.Address}}<div>{{.Company.Address}}</div>{{end}}
        {{if .Company.Phone}}<div>Tel: {{.Company.Phone}}</div>{{end}}
        {{if .Company.Email}}<div>{{.Company.Email}}</div>{{end}}
    </div>

    <div class="meta">
        <div><strong>Folio:</strong> {{.Folio}}</div>
        <div><strong>Date:</strong> {{.Date}}</div>
    </div>

    <table>
        <tr>
            <th>Product</th>
            <th class="num">Qty</th>
            <th class="num">Unit Price</th>
            <th class="num">Subtotal</th>
        </tr>
        {{range .Lines}}
        <tr>
            <td>{{.Name}}{{if .Wholesale}} (wholesale){{end}}</td>
            <td class="num">{{.Quantity}}</td>
            <td class="num">${{.UnitPrice}}</td>
            <td class="num">${{.Subtotal}}</td>
        </tr>
        {{end}}
    </table>

    <table class="totals">
        {{if .Discount}}
        <tr><td>Wholesale discount</td><td class="num">${{.Discount}}</td></tr>
        {{end}}
        <tr><td>Subtotal</td><td class="num">${{.Subtotal}}</td></tr>
        <tr><td>Tax (16%)</td><td class="num">${{.Tax}}</td></tr>
        <tr class="grand-total"><td>TOTAL</td><td class="num">${{.Total}}</td></tr>
        <tr><td>Tendered</td><td class="num">${{.Tendered}}</td></tr>
        <tr><td>Change</td><td class="num">${{.Change}}</td></tr>
    </table>

    <div class="footer">THANK YOU FOR YOUR PURCHASE!</div>
</body>
</html>
`
