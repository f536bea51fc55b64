package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"yashubustudio/feedbackanalyzer/analyzer"
)

type uiState struct {
	service *analyzer.Service
	logger  *zap.Logger

	w          fyne.Window
	statusBind binding.String
	progress   *widget.ProgressBar
	preview    *widget.Table
	results    *fyne.Container
	summary    *widget.Label

	uploadBtn *widget.Button
	exportBtn *widget.Button

	header   []string
	head     [][]string
	analysis *analyzer.Analysis
}

func buildUI(a fyne.App, svc *analyzer.Service, logger *zap.Logger, logBind binding.String) *uiState {
	u := &uiState{service: svc, logger: logger}
	u.w = a.NewWindow("Student Feedback Analyzer")

	u.statusBind = binding.NewString()
	_ = u.statusBind.Set("Upload your feedback CSV")
	u.progress = widget.NewProgressBar()
	u.progress.Hide()

	u.uploadBtn = widget.NewButtonWithIcon("Upload CSV", theme.FolderOpenIcon(), func() { u.onUpload() })
	u.exportBtn = widget.NewButtonWithIcon("Export PDF Report", theme.DocumentSaveIcon(), func() { u.onExport() })
	u.exportBtn.Disable()

	u.preview = widget.NewTable(
		func() (int, int) {
			if len(u.header) == 0 {
				return 0, 0
			}
			return len(u.head) + 1, len(u.header)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			lbl := obj.(*widget.Label)
			if id.Row == 0 {
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				lbl.SetText(u.header[id.Col])
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			row := u.head[id.Row-1]
			if id.Col < len(row) {
				lbl.SetText(truncateText(row[id.Col], 40))
			} else {
				lbl.SetText("")
			}
		},
	)

	u.results = container.NewVBox()
	u.summary = widget.NewLabel("")
	u.summary.Wrapping = fyne.TextWrapWord

	logView := widget.NewEntryWithData(logBind)
	logView.MultiLine = true
	logView.Wrapping = fyne.TextWrapWord
	logView.Disable()

	left := container.NewBorder(
		container.NewVBox(
			container.NewGridWithColumns(2, u.uploadBtn, u.exportBtn),
			u.progress,
			widget.NewLabelWithData(u.statusBind),
			widget.NewSeparator(),
			widget.NewLabelWithStyle("Data Loaded", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		),
		nil, nil, nil,
		container.NewVSplit(u.preview, logView),
	)
	right := container.NewVScroll(container.NewVBox(
		u.results,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Overall Summary", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.summary,
	))
	split := container.NewHSplit(left, right)
	split.Offset = 0.35

	u.w.SetContent(split)
	u.w.Resize(fyne.NewSize(1180, 760))
	return u
}

func (u *uiState) setBusy(b bool) {
	fyne.Do(func() {
		if b {
			u.uploadBtn.Disable()
			u.exportBtn.Disable()
			u.progress.Show()
			return
		}
		u.uploadBtn.Enable()
		if u.analysis != nil {
			u.exportBtn.Enable()
		}
		u.progress.Hide()
	})
}

func (u *uiState) onUpload() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		name := filepath.Base(rc.URI().Path())
		tbl, err := analyzer.ReadTable(rc)
		if err != nil {
			u.logger.Error("upload rejected", zap.String("file", name), zap.Error(err))
			dialog.ShowError(fmt.Errorf("read %s: %w", name, err), u.w)
			return
		}
		u.header = tbl.Columns()
		u.head = tbl.Head(previewRows)
		u.preview.Refresh()
		u.analyze(tbl, name)
	}, u.w)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	fd.Show()
}

// analyze reruns the whole pipeline from a clean slate for the uploaded table.
func (u *uiState) analyze(tbl *analyzer.Table, name string) {
	u.analysis = nil
	u.results.RemoveAll()
	u.summary.SetText("")
	u.progress.Max = float64(len(tbl.Columns()))
	u.progress.SetValue(0)
	_ = u.statusBind.Set("Analysing...")
	u.setBusy(true)
	start := time.Now()

	go func() {
		a, err := u.service.AnalyzeTable(context.Background(), tbl, name, func(done, total int, column string) {
			fyne.Do(func() { u.progress.SetValue(float64(done)) })
			_ = u.statusBind.Set(fmt.Sprintf("Analysing %d/%d: %s", done, total, column))
		})
		if err != nil {
			u.setBusy(false)
			_ = u.statusBind.Set("Error")
			fyne.Do(func() { dialog.ShowError(err, u.w) })
			return
		}
		fyne.Do(func() {
			u.analysis = a
			for _, rec := range a.Records {
				u.results.Add(u.renderRecord(rec))
			}
			u.summary.SetText(a.Summary)
		})
		u.setBusy(false)
		_ = u.statusBind.Set(fmt.Sprintf("Analysed %d columns (%.1fs)", len(a.Records), time.Since(start).Seconds()))
	}()
}

func (u *uiState) renderRecord(rec analyzer.ColumnRecord) fyne.CanvasObject {
	samples := u.service.Config().Report.Samples
	box := container.NewVBox(wrapLabel(formatKeywords(rec.Keywords)))
	box.Add(widget.NewLabelWithStyle("Clusters:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, th := range rec.Themes {
		box.Add(wrapLabel(formatTheme(th, samples)))
	}
	box.Add(wrapLabel(formatQuotes(rec.Quotes)))
	if rec.WordCloud != "" {
		img := canvas.NewImageFromFile(rec.WordCloud)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(560, 280))
		box.Add(img)
	}
	return widget.NewCard("Analysis for "+rec.Column, "", box)
}

func (u *uiState) onExport() {
	if u.analysis == nil {
		dialog.ShowInformation("Export", "Nothing to export yet", u.w)
		return
	}
	res, err := u.service.ExportReport(u.analysis, "")
	if err != nil {
		u.logger.Error("export failed", zap.Error(err))
		dialog.ShowError(err, u.w)
		return
	}
	dialog.ShowInformation("Export", fmt.Sprintf("PDF Generated! Check %s in your folder (%d pages).", res.Path, res.Pages), u.w)
}

func wrapLabel(text string) *widget.Label {
	lbl := widget.NewLabel(text)
	lbl.Wrapping = fyne.TextWrapWord
	return lbl
}
