package domain

import (
	"slices"
	"sort"
)

// Campos de metadados estáticos informados no formulário
const (
	MetadataPageID              = "pageID"
	MetadataPageName            = "pageName"
	MetadataCurrentSwitch       = "currentSwitch"
	MetadataCampaignName        = "campaignName"
	MetadataAdSetName           = "adSetName"
	MetadataAdName              = "adName"
	MetadataAdCreative          = "adCreative"
	MetadataCampaignLink        = "campaignLink"
	MetadataPageImageLink       = "pageImageLink"
	MetadataCampaignImageLink   = "campaignImageLink"
	MetadataDelivery            = "delivery"
	MetadataBidStrategy         = "bidStrategy"
	MetadataBudget              = "budget"
	MetadataAttributionSettings = "attributionSettings"
	MetadataEnds                = "ends"
	MetadataSchedule            = "schedule"
	MetadataFrequency           = "frequency"
)

// MetadataFields define a ordem canônica dos metadados nas exportações
var MetadataFields = []string{
	MetadataPageID,
	MetadataPageName,
	MetadataCurrentSwitch,
	MetadataCampaignName,
	MetadataAdSetName,
	MetadataAdName,
	MetadataAdCreative,
	MetadataCampaignLink,
	MetadataPageImageLink,
	MetadataCampaignImageLink,
	MetadataDelivery,
	MetadataBidStrategy,
	MetadataBudget,
	MetadataAttributionSettings,
	MetadataEnds,
	MetadataSchedule,
	MetadataFrequency,
}

// ReservedFields são as colunas calculadas do registro. Metadados com esses nomes
// não entram no registro para não sobrescrever valores calculados.
var ReservedFields = []string{
	"date", "platform", "placement",
	"linkClicks", "costPerResult", "amountSpent", "reach", "impressions",
	"cpm", "cpc", "ctr", "clicksAll", "ctrAll", "cpcAll",
}

func IsReservedField(key string) bool {
	return slices.Contains(ReservedFields, key)
}

// Metadata é o mapa aberto de campos estáticos da campanha
type Metadata map[string]string

// Keys retorna os campos canônicos seguidos dos campos extras em ordem alfabética
func (m Metadata) Keys() []string {
	keys := slices.Clone(MetadataFields)

	extras := make([]string, 0)
	for k := range m {
		if !slices.Contains(MetadataFields, k) && !IsReservedField(k) {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)

	return append(keys, extras...)
}

func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}

	clone := make(Metadata, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}
