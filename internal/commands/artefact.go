package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/srecha/invoice-core/internal/artefact"
)

type ArtefactCommands struct {
	Files *artefact.Store
}

func NewArtefactCommands(files *artefact.Store) *ArtefactCommands {
	return &ArtefactCommands{Files: files}
}

func (h *ArtefactCommands) Register(d *Dispatcher) {
	d.Handle("save_invoice_html", h.save)
	d.Handle("load_invoice_html", h.load)
	d.Handle("delete_invoice_html", h.delete)
}

type artefactArgs struct {
	InvoiceNumber string `json:"invoiceNumber"`
	DocumentType  string `json:"documentType"`
	Year          string `json:"year"`
	Month         string `json:"month"`
	HTMLContent   string `json:"htmlContent"`
}

func (h *ArtefactCommands) save(_ context.Context, raw json.RawMessage) (any, error) {
	var args artefactArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode invoice html args: %w", err)
	}
	return h.Files.Save(args.InvoiceNumber, args.DocumentType, args.Year, args.Month, args.HTMLContent)
}

func (h *ArtefactCommands) load(_ context.Context, raw json.RawMessage) (any, error) {
	var args artefactArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode invoice html args: %w", err)
	}
	return h.Files.Load(args.InvoiceNumber, args.DocumentType, args.Year, args.Month)
}

func (h *ArtefactCommands) delete(_ context.Context, raw json.RawMessage) (any, error) {
	var args artefactArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode invoice html args: %w", err)
	}
	return nil, h.Files.Delete(args.InvoiceNumber, args.DocumentType, args.Year, args.Month)
}
