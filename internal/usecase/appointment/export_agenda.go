package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/audit"
	"github.com/BruksfildServices01/petshop-console/internal/console"
	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/export"
	"github.com/BruksfildServices01/petshop-console/internal/httperr"
)

const (
	MsgExportFailed    = "Erro ao exportar agenda. Tente novamente."
	CodeExportDisabled = "export_disabled"
)

var ErrExportDisabled = httperr.ErrBusinessMsg(
	CodeExportDisabled,
	"Exportação da agenda não está configurada.",
)

type ExportResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type ExportAgenda struct {
	uploader export.Uploader
	audit    *audit.Dispatcher
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
}

// NewExportAgenda aceita uploader nil: a exportação fica desligada.
func NewExportAgenda(
	uploader export.Uploader,
	audit *audit.Dispatcher,
	loc *time.Location,
	log *zap.Logger,
) *ExportAgenda {
	return &ExportAgenda{
		uploader: uploader,
		audit:    audit,
		loc:      loc,
		now:      time.Now,
		log:      orNop(log),
	}
}

// Execute exporta a lista em memória, já filtrada pelo termo de busca.
func (uc *ExportAgenda) Execute(
	ctx context.Context,
	screen *console.Screen,
	term string,
) (*ExportResult, error) {

	if uc.uploader == nil {
		return nil, ErrExportDisabled
	}

	var rows int
	var body []byte
	var buildErr error
	if err := screen.Do(func(st *console.State) {
		list := domain.Search(st.Appointments, term, uc.loc)
		rows = len(list)
		body, buildErr = export.BuildCSV(list, uc.loc)
		if buildErr != nil {
			st.Fail(&st.Export, MsgExportFailed)
			return
		}
		st.Export.Busy = true
	}); err != nil {
		return nil, err
	}
	if buildErr != nil {
		return nil, buildErr
	}

	key := export.ObjectKey(uc.now().In(uc.loc))
	location, err := uc.uploader.Upload(ctx, key, "text/csv; charset=utf-8", body)
	if err != nil {
		uc.log.Warn("export agenda failed",
			zap.String("session_id", screen.ID),
			zap.String("key", key),
			zap.Error(err),
		)
	}

	if doErr := screen.Do(func(st *console.State) {
		st.Export.Busy = false
		if err != nil {
			st.Fail(&st.Export, MsgExportFailed)
			return
		}
		st.Succeed(&st.Export)
	}); doErr != nil {
		return nil, doErr
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: screen.ID,
		Action:    "agenda_exported",
		Entity:    "agenda",
		Metadata:  map[string]any{"key": key, "count": rows},
	})

	return &ExportResult{Key: key, Location: location, Count: rows}, nil
}
