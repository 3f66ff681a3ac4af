package reporting

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
	"github.com/vfg2006/everflow-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/everflow-reporting-api/pkg/utils"
)

// requiredMetadata são os campos estáticos obrigatórios no formulário
var requiredMetadata = []string{
	domain.MetadataPageID,
	domain.MetadataPageName,
	domain.MetadataCampaignName,
	domain.MetadataCampaignLink,
}

// SubmitRequest é a submissão do formulário. Campos desconhecidos viram metadados estáticos.
type SubmitRequest struct {
	From        string         `mapstructure:"from"`
	To          string         `mapstructure:"to"`
	OfferID     int            `mapstructure:"offerId"`
	AffiliateID int            `mapstructure:"affiliateId"`
	TimezoneID  int            `mapstructure:"timezoneId"`
	Padding     bool           `mapstructure:"padding"`
	Metadata    map[string]any `mapstructure:",remain"`
}

// DecodeSubmitRequest converte o corpo JSON aceitando números como texto
func DecodeSubmitRequest(input map[string]any) (*SubmitRequest, error) {
	request := &SubmitRequest{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           request,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(input); err != nil {
		return nil, NewReportError(ErrInvalidSubmission, apiErrors.ErrInvalidFormat, err.Error())
	}

	return request, nil
}

func (r *SubmitRequest) Validate() error {
	if _, _, err := utils.ParseDateRange(r.From, r.To); err != nil {
		return NewReportError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, err.Error())
	}

	reserved := make([]string, 0)
	for key := range r.Metadata {
		if domain.IsReservedField(key) {
			reserved = append(reserved, key)
		}
	}
	if len(reserved) > 0 {
		sort.Strings(reserved)
		return NewReportError(ErrInvalidSubmission, apiErrors.ErrInvalidFormat, fmt.Sprintf("metadados com nome de coluna calculada: %v", reserved))
	}

	missing := make([]string, 0)
	if r.OfferID <= 0 {
		missing = append(missing, "offerId")
	}
	if r.AffiliateID <= 0 {
		missing = append(missing, "affiliateId")
	}
	if r.TimezoneID <= 0 {
		missing = append(missing, "timezoneId")
	}

	static := r.StaticMetadata()
	for _, key := range requiredMetadata {
		if static[key] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return NewReportError(ErrInvalidSubmission, apiErrors.ErrMissingRequiredData, fmt.Sprintf("campos obrigatórios ausentes: %v", missing))
	}

	return nil
}

// StaticMetadata converte os campos extras em texto. Booleanos viram "True"/"False".
func (r *SubmitRequest) StaticMetadata() domain.Metadata {
	metadata := make(domain.Metadata, len(r.Metadata))

	keys := make([]string, 0, len(r.Metadata))
	for k := range r.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		metadata[k] = metadataString(r.Metadata[k])
	}

	return metadata
}

func metadataString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		if value {
			return "True"
		}
		return "False"
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return fmt.Sprint(value)
	}
}

// Query monta a consulta ao Everflow para a visão
func (r *SubmitRequest) Query(view domain.View) (*domain.EntityReportQuery, error) {
	from, to, err := utils.ParseDateRange(r.From, r.To)
	if err != nil {
		return nil, NewReportError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, err.Error())
	}

	return &domain.EntityReportQuery{
		From:        from,
		To:          to,
		OfferID:     r.OfferID,
		AffiliateID: r.AffiliateID,
		TimezoneID:  r.TimezoneID,
		Columns:     view.ReportColumns(),
	}, nil
}

func (r *SubmitRequest) Clone() *SubmitRequest {
	clone := *r
	clone.Metadata = make(map[string]any, len(r.Metadata))
	for k, v := range r.Metadata {
		clone.Metadata[k] = v
	}
	return &clone
}
