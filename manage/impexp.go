package manage

import (
	"context"
	"fmt"

	"github.com/etnz/networth"
	"github.com/etnz/networth/view"
)

func (m *Manager) importRecords(ctx context.Context, ev Event) (*Mutation, error) {
	if ev.Records != networth.KindAssets && ev.Records != networth.KindDebts {
		return nil, fmt.Errorf("cannot import %s", ev.Records)
	}
	format, err := networth.ImportFileFormat(ev.Filename)
	if err != nil {
		return nil, err
	}
	res, err := m.svc.Import(ctx, ev.Records, format, ev.Body)
	if err != nil {
		return nil, err
	}
	level := view.LevelSuccess
	if len(res.Errors) > 0 {
		level = view.LevelWarning
		for _, e := range res.Errors {
			m.log.Warn("import error", "file", ev.Filename, "error", e)
		}
	}
	return &Mutation{
		Records: ev.Records,
		Op:      Imported,
		Message: res.Message(ev.Records),
		Level:   level,
		Result:  &res,
	}, nil
}

// export downloads an export to ev.Out. Nothing is written to the service so
// no list is refreshed.
func (m *Manager) export(ctx context.Context, ev Event) (*Mutation, error) {
	if ev.Out == nil {
		return nil, fmt.Errorf("no destination for the export of %s", ev.Records)
	}
	name, err := m.svc.Export(ctx, ev.Records, ev.Format, ev.Out)
	if err != nil {
		return nil, err
	}
	m.log.Info("exported", "kind", ev.Records, "format", ev.Format, "filename", name, "url", m.svc.ExportURL(ev.Records, ev.Format))
	return &Mutation{Records: ev.Records, Op: Exported, Level: view.LevelSuccess, Filename: name}, nil
}
