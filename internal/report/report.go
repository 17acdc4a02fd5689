// Package report готовит графики к передаче внешнему рендереру: отформатированные
// ячейки таблицы, строку итогов, подпись и параметры плотности макета.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cloud-ru/kredit-schedule-go/internal/calculations"
	"github.com/cloud-ru/kredit-schedule-go/pkg/utils"
	"github.com/google/uuid"
)

// Currency название валюты в подписях
const Currency = "сум"

const emptyCell = "-"

// Header заголовок таблицы графика
var Header = []string{"Месяц", "Проценты", "Основной долг", "Ежемесячный платеж", "Остаток"}

var titles = map[calculations.Convention]string{
	calculations.Annuity:      "Аннуитетный график платежей",
	calculations.Differential: "Дифференцированный график платежей",
}

// Layout параметры плотности таблицы для рендерера
type Layout struct {
	FontSize    float64 `json:"font_size"`
	CellPadding float64 `json:"cell_padding"`
}

// LayoutFor подбирает размер шрифта и отступы по сроку кредита
func LayoutFor(months int) Layout {
	switch {
	case months <= 12:
		return Layout{FontSize: 12, CellPadding: 0.05}
	case months <= 24:
		return Layout{FontSize: 10, CellPadding: 0.04}
	case months <= 36:
		return Layout{FontSize: 8, CellPadding: 0.035}
	case months <= 48:
		return Layout{FontSize: 7, CellPadding: 0.03}
	case months <= 60:
		return Layout{FontSize: 6, CellPadding: 0.025}
	case months <= 72:
		return Layout{FontSize: 5.5, CellPadding: 0.02}
	default:
		return Layout{FontSize: 5, CellPadding: 0.015}
	}
}

// Table отформатированная таблица графика
type Table struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
	Totals []string   `json:"totals"`
	Layout Layout     `json:"layout"`
}

// Report все, что нужно рендереру и каналу доставки для одного графика
type Report struct {
	Convention   calculations.Convention      `json:"convention"`
	Table        Table                        `json:"table"`
	Summary      calculations.ScheduleSummary `json:"summary"`
	Caption      string                       `json:"caption"`
	ArtifactName string                       `json:"artifact_name"`
}

// Title возвращает заголовок графика для схемы
func Title(convention calculations.Convention) string {
	if title, ok := titles[convention]; ok {
		return title
	}
	return string(convention)
}

// PeriodLabel подпись месяца в первой колонке
func PeriodLabel(period int) string {
	return fmt.Sprintf("%d-й месяц", period)
}

// BuildTable форматирует строки графика и строку итогов
func BuildTable(schedule *calculations.Schedule, summary calculations.ScheduleSummary, title string) Table {
	rows := make([][]string, 0, len(schedule.Rows))
	for _, row := range schedule.Rows {
		rows = append(rows, []string{
			PeriodLabel(row.Period),
			utils.FormatDecimal(row.Interest),
			utils.FormatDecimal(row.Principal),
			utils.FormatDecimal(row.Payment),
			utils.FormatDecimal(row.RemainingBalance),
		})
	}

	return Table{
		Title:  title,
		Header: Header,
		Rows:   rows,
		Totals: []string{
			"Итого",
			utils.FormatDecimal(summary.TotalInterest),
			emptyCell,
			utils.FormatDecimal(summary.TotalPayment),
			emptyCell,
		},
		Layout: LayoutFor(schedule.TermMonths),
	}
}

// Caption подпись к графику с итогами
func Caption(title string, summary calculations.ScheduleSummary) string {
	return fmt.Sprintf("%s\nВсего процентов: %s %s\nВсего к оплате: %s %s",
		title,
		utils.FormatDecimal(summary.TotalInterest), Currency,
		utils.FormatDecimal(summary.TotalPayment), Currency)
}

// ArtifactName уникальное имя файла изображения графика
func ArtifactName(convention calculations.Convention) string {
	return fmt.Sprintf("%s_%s.png", convention, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Assemble собирает отчет по графику
func Assemble(schedule *calculations.Schedule) Report {
	summary := calculations.Summarize(schedule)
	title := Title(schedule.Convention)
	return Report{
		Convention:   schedule.Convention,
		Table:        BuildTable(schedule, summary, title),
		Summary:      summary.Rounded(),
		Caption:      Caption(title, summary),
		ArtifactName: ArtifactName(schedule.Convention),
	}
}

// WriteText выводит таблицу в текстовом виде с выравниванием колонок
func WriteText(w io.Writer, table Table) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", table.Title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	writeRow := func(cells []string) {
		fmt.Fprintf(tw, "%s\t\n", strings.Join(cells, "\t"))
	}

	writeRow(table.Header)
	for _, row := range table.Rows {
		writeRow(row)
	}
	writeRow(table.Totals)
	return tw.Flush()
}
