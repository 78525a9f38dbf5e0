// Package commands implements the fixed catalogue of operations the desktop
// shell invokes by name. Every command is a synchronous request/response: a
// JSON argument record in, a JSON-shaped result or a textual error out.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/srecha/invoice-core/internal/artefact"
	"github.com/srecha/invoice-core/internal/store"
)

// HandlerFunc executes one named command against the store.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

// Dispatcher routes named commands to their handlers. It owns the store lock:
// a command holds the database handle for its whole statement sequence, so
// commands arriving from different host workers are serialised here.
type Dispatcher struct {
	store    *store.Store
	handlers map[string]HandlerFunc
	log      *zap.Logger
}

func NewDispatcher(st *store.Store, files *artefact.Store, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{store: st, handlers: make(map[string]HandlerFunc), log: log}
	db := st.DB()
	NewAuthCommands(db).Register(d)
	NewClientCommands(db).Register(d)
	NewProductCommands(db).Register(d)
	NewCategoryCommands(db).Register(d)
	NewInvoiceCommands(db).Register(d)
	NewDeliveryCommands(db).Register(d)
	NewWarehouseCommands(db).Register(d)
	NewSupplierCommands(db).Register(d)
	NewCountryCommands(db).Register(d)
	NewArtefactCommands(files).Register(d)
	return d
}

// Handle registers a command under its wire name.
func (d *Dispatcher) Handle(name string, fn HandlerFunc) {
	d.handlers[name] = fn
}

// Dispatch runs one command. Unknown names and handler failures are both
// surfaced as errors; the caller renders them as plain strings.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) (any, error) {
	fn, ok := d.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}

	d.store.Lock()
	defer d.store.Unlock()

	start := time.Now()
	res, err := fn(ctx, args)
	observeCommand(name, time.Since(start), err)
	if err != nil {
		d.log.Warn("command failed", zap.String("command", name), zap.Error(err))
		return nil, err
	}
	d.log.Debug("command ok", zap.String("command", name), zap.Duration("took", time.Since(start)))
	return res, nil
}
