package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/petshop-console/internal/format"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

var header = []string{
	"ID",
	"Data/Hora",
	"Animal",
	"Cliente",
	"Funcionário",
	"Status",
	"Serviços",
	"Valor Total",
}

// BuildCSV gera a agenda no formato lido pelas planilhas da loja
// (separador ';', datas e valores em pt-BR).
func BuildCSV(appointments []models.Appointment, loc *time.Location) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, ap := range appointments {
		names := make([]string, 0, len(ap.Services))
		for _, s := range ap.Services {
			names = append(names, s.ServiceName)
		}

		record := []string{
			strconv.FormatInt(ap.ID, 10),
			format.DateTime(ap.ScheduledAt, loc),
			ap.AnimalName,
			ap.ClientName,
			ap.EmployeeName,
			ap.Status,
			strings.Join(names, ", "),
			format.OptionalPrice(ap.Total),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write agenda csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ObjectKey segue agenda/{data}/{uuid}.csv.
func ObjectKey(now time.Time) string {
	return fmt.Sprintf("agenda/%s/%s.csv", now.Format("2006-01-02"), uuid.NewString())
}
