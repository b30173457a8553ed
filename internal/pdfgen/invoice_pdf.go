package pdfgen

import (
	"bytes"
	"fmt"

	"dash-backend/internal/models"
	"dash-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// Renderer produces invoice PDFs. It is stateless and safe for
// concurrent use.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render generates the printable invoice document
func (r *Renderer) Render(inv *models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "INVOICE", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, inv.InvoiceNumber, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Invoice Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Invoice Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Issue Date: %s", inv.IssueDate.Format(timeutil.DisplayLayout)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Due Date: %s", inv.DueDate.Format(timeutil.DisplayLayout)), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", inv.Status), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Order: %s", inv.OrderID), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Bill To
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Bill To", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", inv.Client.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("CIN: %s", inv.ClientCIN), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Email: %s", inv.Client.Email), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", inv.Client.Phone), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(190, 7, fmt.Sprintf("Location: %s", inv.Client.Location), "LRB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Line items
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Items", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Reference", "1", 0, "C", true, 0, "")
	pdf.CellFormat(75, 7, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Unit Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Total", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		desc := item.Description
		if len(desc) > 40 {
			desc = desc[:37] + "..."
		}
		pdf.CellFormat(35, 6, item.Reference, "1", 0, "C", false, 0, "")
		pdf.CellFormat(75, 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", item.TotalPrice), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Totals
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(130, 7, "", "", 0, "", false, 0, "")
	pdf.CellFormat(30, 7, "Subtotal", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", inv.Subtotal), "1", 1, "R", false, 0, "")
	pdf.CellFormat(130, 7, "", "", 0, "", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("Tax (%.0f%%)", inv.TaxRate), "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", inv.TaxAmount), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(200, 255, 200)
	pdf.CellFormat(130, 8, "", "", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", inv.TotalAmount), "1", 1, "R", true, 0, "")

	// Notes
	if inv.Notes != "" {
		pdf.Ln(5)
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(190, 6, inv.Notes, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
