package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/srecha/invoice-core/internal/artefact"
)

func TestInvoiceHTMLRoundTrip(t *testing.T) {
	d, _ := setupDispatcher(t)

	var path string
	call(t, d, "save_invoice_html", `{
		"invoiceNumber": "2024/07",
		"documentType": "invoice",
		"year": "2024",
		"month": "05",
		"htmlContent": "<html><body>Фактура 2024/07</body></html>"
	}`, &path)
	if path == "" {
		t.Fatalf("save returned empty path")
	}

	var html string
	call(t, d, "load_invoice_html", `{"invoiceNumber":"2024/07","documentType":"invoice","year":"2024","month":"05"}`, &html)
	if html != "<html><body>Фактура 2024/07</body></html>" {
		t.Fatalf("unexpected html: %q", html)
	}

	call(t, d, "delete_invoice_html", `{"invoiceNumber":"2024/07","documentType":"invoice","year":"2024","month":"05"}`, nil)
	_, err := d.Dispatch(context.Background(), "load_invoice_html",
		json.RawMessage(`{"invoiceNumber":"2024/07","documentType":"invoice","year":"2024","month":"05"}`))
	if !errors.Is(err, artefact.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteInvoiceHTMLMissingIsNoop(t *testing.T) {
	d, _ := setupDispatcher(t)

	call(t, d, "delete_invoice_html", `{"invoiceNumber":"never","documentType":"invoice","year":"2024","month":"01"}`, nil)
}
