package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytmp3/internal/model"
	"github.com/ytget/ytmp3/internal/view"
)

// ResultRow is one search hit with its own bitrate selector and convert button
type ResultRow struct {
	widget.BaseWidget

	index        int
	row          view.ResultRow
	localization *Localization

	titleLabel    *widget.Label
	metaLabel     *widget.Label
	descLabel     *widget.Label
	qualitySelect *widget.Select
	convertBtn    *widget.Button

	onConvert func(index int, url, quality string)
}

// NewResultRow creates a row for the index-th result
func NewResultRow(index int, row view.ResultRow, loc *Localization, onConvert func(index int, url, quality string)) *ResultRow {
	rr := &ResultRow{
		index:        index,
		row:          row,
		localization: loc,
		onConvert:    onConvert,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	return rr
}

func (rr *ResultRow) createUI() {
	rr.titleLabel = widget.NewLabel(rr.row.Title)
	rr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.titleLabel.Wrapping = fyne.TextWrapWord

	rr.metaLabel = widget.NewLabel(rr.row.Meta)
	rr.metaLabel.Importance = widget.LowImportance

	rr.descLabel = widget.NewLabel(rr.row.Description)
	rr.descLabel.Wrapping = fyne.TextWrapWord
	if rr.row.Description == "" {
		rr.descLabel.Hide()
	}

	rr.qualitySelect = widget.NewSelect(model.BitrateLabels(), nil)
	rr.qualitySelect.SetSelected(model.BitrateLabel(rr.row.Quality))

	rr.convertBtn = widget.NewButton(rr.localization.GetText(KeyConvert), rr.onConvertTapped)
	rr.convertBtn.Importance = widget.HighImportance
}

// onConvertTapped reads the selector when clicked, not when the row was built
func (rr *ResultRow) onConvertTapped() {
	if rr.onConvert == nil {
		return
	}
	rr.onConvert(rr.index, rr.row.URL, rr.Quality())
}

// Quality returns the bitrate currently selected in the row
func (rr *ResultRow) Quality() string {
	return model.BitrateFromLabel(rr.qualitySelect.Selected)
}

// SetBusy disables the convert button while its request runs
func (rr *ResultRow) SetBusy(busy bool) {
	setButtonBusy(rr.convertBtn, busy, rr.localization.GetText(KeyConvert), rr.localization.GetText(KeyConverting))
}

// CreateRenderer creates the widget renderer
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	controls := container.NewHBox(
		widget.NewLabel(rr.localization.GetText(KeyQuality)),
		container.NewGridWrap(fyne.NewSize(QualitySelectW, rr.qualitySelect.MinSize().Height), rr.qualitySelect),
		rr.convertBtn,
	)
	content := container.NewVBox(
		rr.titleLabel,
		rr.metaLabel,
		rr.descLabel,
		controls,
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows readable in narrow windows
func (rr *ResultRow) MinSize() fyne.Size {
	size := rr.BaseWidget.MinSize()
	if size.Width < ResultRowMinWidth {
		size.Width = ResultRowMinWidth
	}
	return size
}
