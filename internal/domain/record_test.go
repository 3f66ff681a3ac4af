package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow() SyntheticRow {
	return SyntheticRow{
		Date:          "2024-03-10",
		Platform:      "Android",
		Placement:     PlacementAll,
		LinkClicks:    100,
		CostPerResult: 0.3,
		AmountSpent:   30,
		Reach:         8000,
		Impressions:   24000,
		CPM:           1.25,
		CPC:           0.3,
		CTR:           0.42,
		ClicksAll:     160,
		CTRAll:        0.67,
		CPCAll:        0.19,
		Metadata: Metadata{
			MetadataPageID: "1234",
			"extraB":       "b",
			"extraA":       "a",
		},
	}
}

func TestSyntheticRow_RecordOrder(t *testing.T) {
	record := sampleRow().Record(true)
	names := record.Names()

	assert.Equal(t, "date", names[0])
	assert.Equal(t, MetadataFields, names[1:len(MetadataFields)+1])
	assert.Equal(t, []string{"extraA", "extraB", "platform", "placement", "linkClicks"}, names[18:23])
	assert.Equal(t, "cpcAll", names[len(names)-1])

	value, ok := record.Get(MetadataBudget)
	assert.True(t, ok)
	assert.Equal(t, NotAvailable, value)
}

func TestSyntheticRow_RecordIgnoresReservedMetadata(t *testing.T) {
	row := sampleRow()
	row.Metadata["date"] = "2099-01-01"
	row.Metadata["linkClicks"] = "999"
	row.Metadata["platform"] = "Web"

	record := row.Record(true)

	seen := make(map[string]int)
	for _, name := range record.Names() {
		seen[name]++
	}
	for _, name := range ReservedFields {
		assert.Equal(t, 1, seen[name], name)
	}

	date, _ := record.Get("date")
	assert.Equal(t, "2024-03-10", date)
	clicks, _ := record.Get("linkClicks")
	assert.Equal(t, 100, clicks)
	platform, _ := record.Get("platform")
	assert.Equal(t, "Android", platform)
}

func TestSyntheticRow_RecordWithoutPlacement(t *testing.T) {
	record := sampleRow().Record(false)

	_, ok := record.Get("platform")
	assert.False(t, ok)
	_, ok = record.Get("placement")
	assert.False(t, ok)
	assert.Len(t, record, len(sampleRow().Record(true))-2)
}

func TestRecord_Strings(t *testing.T) {
	row := sampleRow()
	row.Filler = true

	values := row.Record(true).Strings()
	assert.Equal(t, "2024-03-10", values[0])
	assert.Equal(t, "", values[len(values)-1])

	values = sampleRow().Record(true).Strings()
	assert.Equal(t, "0.19", values[len(values)-1])
	assert.Equal(t, "100", values[len(values)-11])
}

func TestRecord_MarshalJSONKeepsOrder(t *testing.T) {
	record := Record{
		{Name: "date", Value: "2024-03-10"},
		{Name: "b", Value: 1},
		{Name: "a", Value: 0.5},
		{Name: "cpm", Value: nil},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Equal(t, `{"date":"2024-03-10","b":1,"a":0.5,"cpm":null}`, string(data))
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights []PlacementWeight
		wantErr string
	}{
		{name: "padrão", weights: DefaultPlacementWeights},
		{name: "vazio", weights: nil, wantErr: "vazia"},
		{name: "negativo", weights: []PlacementWeight{{"A", 1.5}, {"B", -0.5}}, wantErr: "negativo"},
		{name: "soma diferente de 1", weights: []PlacementWeight{{"A", 0.5}, {"B", 0.4}}, wantErr: "somam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeights(tt.weights)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr))
		})
	}
}

func TestParseView(t *testing.T) {
	view, err := ParseView("reporting")
	require.NoError(t, err)
	assert.Equal(t, ViewReporting, view)
	assert.Equal(t, "reporting_data.csv", view.ExportFilename())
	assert.Equal(t, []string{"offer", "affiliate", "date", "platform"}, view.ReportColumns())

	_, err = ParseView("other")
	assert.Error(t, err)
}

func TestReportSlot_Transitions(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	slot := NewReportSlot(ViewCampaign)
	assert.Equal(t, SlotIdle, slot.State)

	slot.Begin("sub-1", now)
	assert.Equal(t, SlotFetching, slot.State)

	slot.Succeed("sub-1", []SyntheticRow{sampleRow()}, now)
	assert.Equal(t, SlotSucceeded, slot.State)
	assert.Len(t, slot.Rows, 1)

	slot.Begin("sub-2", now)
	slot.Fail("sub-2", errors.New("timeout"), now)
	assert.Equal(t, SlotFailed, slot.State)
	assert.Equal(t, "timeout", slot.Error)
	assert.Len(t, slot.Rows, 1, "falha mantém as linhas anteriores")

	status := slot.Status()
	assert.Equal(t, 1, status.RowCount)
	assert.Equal(t, "sub-2", status.SubmissionID)

	slot.Begin("sub-3", now)
	assert.Empty(t, slot.Error)
	slot.Succeed("sub-3", []SyntheticRow{}, now)
	assert.Empty(t, slot.Rows)
}

func TestReportSlot_CloneIsIndependent(t *testing.T) {
	slot := NewReportSlot(ViewReporting)
	slot.Succeed("sub-1", []SyntheticRow{sampleRow()}, time.Now())

	clone := slot.Clone()
	clone.Rows[0].Metadata[MetadataPageID] = "changed"
	clone.Rows[0].LinkClicks = 1

	assert.Equal(t, "1234", slot.Rows[0].Metadata[MetadataPageID])
	assert.Equal(t, 100, slot.Rows[0].LinkClicks)
}
