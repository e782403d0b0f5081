package manage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/etnz/networth"
	"github.com/etnz/networth/view"
)

// Service is the part of the finance service the management page uses.
type Service interface {
	view.AssetLister
	view.DebtLister
	GetAsset(ctx context.Context, id string) (networth.Asset, error)
	CreateAsset(ctx context.Context, draft networth.AssetDraft) (networth.Created, error)
	UpdateAsset(ctx context.Context, id string, patch networth.AssetPatch) error
	DeleteAsset(ctx context.Context, id string) error
	GetDebt(ctx context.Context, id string) (networth.Debt, error)
	CreateDebt(ctx context.Context, draft networth.DebtDraft) (networth.Created, error)
	UpdateDebt(ctx context.Context, id string, patch networth.DebtPatch) error
	DeleteDebt(ctx context.Context, id string) error
	ExportURL(kind networth.Kind, format networth.FileFormat) string
	Export(ctx context.Context, kind networth.Kind, format networth.FileFormat, w io.Writer) (string, error)
	Import(ctx context.Context, kind networth.Kind, format networth.FileFormat, body io.Reader) (networth.ImportResult, error)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to a Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// EventKind is a user action on the management page.
type EventKind int

const (
	AddAsset    EventKind = iota // open the asset form in create mode
	EditAsset                    // open the asset form on Event.ID
	ChangeAsset                  // set Event.Field to Event.Value
	SubmitAsset                  // create or update the asset
	CancelAsset                  // close the asset form
	DeleteAsset                  // delete Event.ID after confirmation
	AddDebt
	EditDebt
	ChangeDebt
	SubmitDebt
	CancelDebt
	DeleteDebt
	Import // upload Event.Body named Event.Filename as Event.Kind records
	Export // download Event.Kind records in Event.Format to Event.Out
)

var eventNames = map[EventKind]string{
	AddAsset:    "add-asset",
	EditAsset:   "edit-asset",
	ChangeAsset: "change-asset",
	SubmitAsset: "submit-asset",
	CancelAsset: "cancel-asset",
	DeleteAsset: "delete-asset",
	AddDebt:     "add-debt",
	EditDebt:    "edit-debt",
	ChangeDebt:  "change-debt",
	SubmitDebt:  "submit-debt",
	CancelDebt:  "cancel-debt",
	DeleteDebt:  "delete-debt",
	Import:      "import",
	Export:      "export",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a user action and its arguments. Only the fields relevant to
// Kind are read.
type Event struct {
	Kind EventKind

	ID   string // record to edit or delete
	Name string // record name shown in the delete prompt, fetched when blank

	Field Field
	Value string

	Records  networth.Kind // import and export
	Format   networth.FileFormat
	Filename string
	Body     io.Reader
	Out      io.Writer
}

// Op is what a mutation did.
type Op int

const (
	Created Op = iota
	Updated
	Deleted
	Imported
	Exported
)

// Mutation describes a successful write to the service, or a download.
type Mutation struct {
	Records  networth.Kind
	Op       Op
	ID       string
	Message  string
	Level    view.Level
	Result   *networth.ImportResult // set for imports
	Filename string                 // set for exports, as proposed by the service
}

type handler func(ctx context.Context, ev Event) (*Mutation, error)

// Manager is the management page controller.
//
// It owns one form per record kind. Events go through Dispatch; a handler
// that writes to the service returns a Mutation and Dispatch then refreshes
// the matching list.
type Manager struct {
	svc     Service
	page    *view.Page
	notify  view.Notifier
	confirm Confirmer
	log     *slog.Logger

	Asset *AssetForm
	Debt  *DebtForm

	handlers map[EventKind]handler
}

// NewManager returns the controller of a fresh management page. A nil
// notifier discards notifications; a nil confirmer refuses every deletion.
func NewManager(svc Service, n view.Notifier, c Confirmer) *Manager {
	if n == nil {
		n = view.Discard
	}
	if c == nil {
		c = ConfirmFunc(func(string) bool { return false })
	}
	m := &Manager{
		svc:     svc,
		page:    view.NewPage(view.ManageSlots...),
		notify:  n,
		confirm: c,
		log:     slog.Default(),
		Asset:   NewAssetForm(),
		Debt:    NewDebtForm(),
	}
	m.handlers = map[EventKind]handler{
		AddAsset:    m.addAsset,
		EditAsset:   m.editAsset,
		ChangeAsset: m.changeAsset,
		SubmitAsset: m.submitAsset,
		CancelAsset: m.cancelAsset,
		DeleteAsset: m.deleteAsset,
		AddDebt:     m.addDebt,
		EditDebt:    m.editDebt,
		ChangeDebt:  m.changeDebt,
		SubmitDebt:  m.submitDebt,
		CancelDebt:  m.cancelDebt,
		DeleteDebt:  m.deleteDebt,
		Import:      m.importRecords,
		Export:      m.export,
	}
	return m
}

// WithLogger sets the logger of m and returns m.
func (m *Manager) WithLogger(l *slog.Logger) *Manager {
	m.log = l
	return m
}

// Page returns the rendered page.
func (m *Manager) Page() *view.Page { return m.page }

// Load renders both lists.
func (m *Manager) Load(ctx context.Context) {
	m.refresh(ctx, networth.KindAssets)
	m.refresh(ctx, networth.KindDebts)
}

// Reset closes both forms and clears the page.
func (m *Manager) Reset() {
	m.Asset.Close()
	m.Debt.Close()
	m.page.Reset()
}

// Dispatch handles ev. Failures are notified and returned. A nil Mutation
// with a nil error means nothing was written, a cancelled deletion for
// instance.
func (m *Manager) Dispatch(ctx context.Context, ev Event) (*Mutation, error) {
	h, ok := m.handlers[ev.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown event %v", ev.Kind)
	}
	m.log.Debug("dispatch", "event", ev.Kind, "id", ev.ID)
	mut, err := h(ctx, ev)
	if err != nil {
		m.notify.Notify(view.LevelError, err.Error())
		return nil, err
	}
	if mut == nil {
		return nil, nil
	}
	if mut.Message != "" {
		m.notify.Notify(mut.Level, mut.Message)
	}
	if mut.Op != Exported {
		m.refresh(ctx, mut.Records)
	}
	return mut, nil
}

// refresh re-renders the list of kind from the service.
func (m *Manager) refresh(ctx context.Context, kind networth.Kind) {
	switch kind {
	case networth.KindAssets:
		if _, err := view.RefreshAssets(ctx, m.svc, m.page, m.notify, view.Full); err != nil {
			m.log.Debug("refresh failed", "error", err)
		}
	case networth.KindDebts:
		if _, err := view.RefreshDebts(ctx, m.svc, m.page, m.notify, view.Full); err != nil {
			m.log.Debug("refresh failed", "error", err)
		}
	}
}

func (m *Manager) addAsset(context.Context, Event) (*Mutation, error) {
	return nil, m.Asset.OpenCreate()
}

func (m *Manager) changeAsset(_ context.Context, ev Event) (*Mutation, error) {
	return nil, m.Asset.Set(ev.Field, ev.Value)
}

func (m *Manager) cancelAsset(context.Context, Event) (*Mutation, error) {
	m.Asset.Close()
	return nil, nil
}

func (m *Manager) editAsset(ctx context.Context, ev Event) (*Mutation, error) {
	if m.Asset.State() == Open {
		return nil, ErrModalOpen
	}
	a, err := m.svc.GetAsset(ctx, ev.ID)
	if err != nil {
		return nil, err
	}
	return nil, m.Asset.OpenEdit(a)
}

func (m *Manager) submitAsset(ctx context.Context, ev Event) (*Mutation, error) {
	mut := &Mutation{Records: networth.KindAssets, Level: view.LevelSuccess}
	if m.Asset.Mode() == Edit {
		patch, err := m.Asset.Patch()
		if err != nil {
			return nil, err
		}
		mut.ID = m.Asset.EditingID()
		if err := m.svc.UpdateAsset(ctx, mut.ID, patch); err != nil {
			return nil, err
		}
		mut.Op, mut.Message = Updated, "Asset updated successfully!"
	} else {
		draft, err := m.Asset.Draft()
		if err != nil {
			return nil, err
		}
		created, err := m.svc.CreateAsset(ctx, draft)
		if err != nil {
			return nil, err
		}
		mut.ID, mut.Op, mut.Message = created.ID, Created, "Asset created successfully!"
	}
	m.Asset.Close()
	return mut, nil
}

func (m *Manager) deleteAsset(ctx context.Context, ev Event) (*Mutation, error) {
	name := ev.Name
	if name == "" {
		a, err := m.svc.GetAsset(ctx, ev.ID)
		if err != nil {
			return nil, err
		}
		name = a.Name
	}
	if !m.confirm.Confirm(deletePrompt(name)) {
		m.log.Debug("deletion cancelled", "id", ev.ID)
		return nil, nil
	}
	if err := m.svc.DeleteAsset(ctx, ev.ID); err != nil {
		return nil, err
	}
	return &Mutation{Records: networth.KindAssets, Op: Deleted, ID: ev.ID, Message: "Asset deleted successfully!", Level: view.LevelSuccess}, nil
}

func (m *Manager) addDebt(context.Context, Event) (*Mutation, error) {
	return nil, m.Debt.OpenCreate()
}

func (m *Manager) changeDebt(_ context.Context, ev Event) (*Mutation, error) {
	return nil, m.Debt.Set(ev.Field, ev.Value)
}

func (m *Manager) cancelDebt(context.Context, Event) (*Mutation, error) {
	m.Debt.Close()
	return nil, nil
}

func (m *Manager) editDebt(ctx context.Context, ev Event) (*Mutation, error) {
	if m.Debt.State() == Open {
		return nil, ErrModalOpen
	}
	d, err := m.svc.GetDebt(ctx, ev.ID)
	if err != nil {
		return nil, err
	}
	return nil, m.Debt.OpenEdit(d)
}

func (m *Manager) submitDebt(ctx context.Context, ev Event) (*Mutation, error) {
	mut := &Mutation{Records: networth.KindDebts, Level: view.LevelSuccess}
	if m.Debt.Mode() == Edit {
		patch, err := m.Debt.Patch()
		if err != nil {
			return nil, err
		}
		mut.ID = m.Debt.EditingID()
		if err := m.svc.UpdateDebt(ctx, mut.ID, patch); err != nil {
			return nil, err
		}
		mut.Op, mut.Message = Updated, "Debt updated successfully!"
	} else {
		draft, err := m.Debt.Draft()
		if err != nil {
			return nil, err
		}
		created, err := m.svc.CreateDebt(ctx, draft)
		if err != nil {
			return nil, err
		}
		mut.ID, mut.Op, mut.Message = created.ID, Created, "Debt created successfully!"
	}
	m.Debt.Close()
	return mut, nil
}

func (m *Manager) deleteDebt(ctx context.Context, ev Event) (*Mutation, error) {
	name := ev.Name
	if name == "" {
		d, err := m.svc.GetDebt(ctx, ev.ID)
		if err != nil {
			return nil, err
		}
		name = d.Name
	}
	if !m.confirm.Confirm(deletePrompt(name)) {
		m.log.Debug("deletion cancelled", "id", ev.ID)
		return nil, nil
	}
	if err := m.svc.DeleteDebt(ctx, ev.ID); err != nil {
		return nil, err
	}
	return &Mutation{Records: networth.KindDebts, Op: Deleted, ID: ev.ID, Message: "Debt deleted successfully!", Level: view.LevelSuccess}, nil
}

func deletePrompt(name string) string {
	return fmt.Sprintf("Are you sure you want to delete %q?", name)
}
