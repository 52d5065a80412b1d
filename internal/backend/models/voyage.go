package models

// VoyageRef identifies the execution voyage linked to a contract.
type VoyageRef struct {
	ID               int64  `json:"id"`
	VesselName       string `json:"vesselName"`
	ExternalVoyageNo string `json:"externalVoyageNo"`
}

// ExternalVoyage is the execution voyage detail.
type ExternalVoyage struct {
	ID               int64           `json:"id"`
	Code             string          `json:"code"`
	VesselCode       string          `json:"vesselCode"`
	VesselName       string          `json:"vesselName"`
	ExternalVoyageNo string          `json:"externalVoyageNo"`
	VoyageCode       string          `json:"voyageCode"`
	VoyageStatus     *int            `json:"voyageStatus"`
	StartTime        string          `json:"startTime"`
	EndTime          string          `json:"endTime"`
	Remark           string          `json:"remark"`
	DeliveryReturn   *DeliveryReturn `json:"deliveryReturnDTO"`
	ExternalOrder    *ExternalOrder  `json:"externalOrderDTO"`
}

type DeliveryReturn struct {
	DeliveryTime     string `json:"deliveryTime"`
	ReturnTime       string `json:"returnTime"`
	DeliveryLocation string `json:"deliveryLocation"`
	ReturnLocation   string `json:"returnLocation"`
}

type ExternalOrder struct {
	OrderNo      string   `json:"orderNo"`
	ContractNo   string   `json:"contractNo"`
	CustomerName string   `json:"customerName"`
	SignDate     string   `json:"signDate"`
	Amount       *float64 `json:"amount"`
	CurrencyCode string   `json:"currencyCode"`
}
