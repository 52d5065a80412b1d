package models

// Contract types as stored in ContractExternal.ContractType.
const (
	ContractTypeFreight = 0 // 揽货合同
	ContractTypeTC      = 1
	ContractTypeTCT     = 2
	ContractTypeVC      = 3
	ContractTypeCOA     = 4
)

// ContractExternal is the foreign-trade contract detail.
type ContractExternal struct {
	ID                  int64    `json:"id"`
	Code                string   `json:"code"`
	ContractNo          string   `json:"contractNo"`
	ContractType        *int     `json:"contractType"`
	BusinessMode        *int     `json:"businessMode"`
	LeaseType           *int     `json:"leaseType"`
	ApprovalStatus      *int     `json:"approvalStatus"`
	ContractNature      string   `json:"contractNature"`
	ContractRemark      string   `json:"contractRemark"`
	AdvancePaymentRatio *float64 `json:"advancePaymentRatio"`

	VesselCode    string `json:"vesselCode"`
	VesselName    string `json:"vesselName"`
	VoyageCode    string `json:"voyageCode"`
	VoyageNo      string `json:"voyageNo"`
	ExtVoyageCode string `json:"extVoyageCode"`
	VoyageType    string `json:"voyageType"`

	GuestBusinessCode      string `json:"guestBusinessCode"`
	CustomerName           string `json:"customerName"`
	OppositeSigningUnit    string `json:"oppositeSigningUnit"`
	OppositeSettlementUnit string `json:"oppositeSettlementUnit"`
	OurSigningUnit         string `json:"ourSigningUnit"`
	OurSigningUnitName     string `json:"ourSigningUnitName"`
	OurSettlementUnit      string `json:"ourSettlementUnit"`

	Operator        string `json:"operator"`
	OperatorID      *int64 `json:"operatorId"`
	BusinessManager *int64 `json:"businessManager"`
	DeptID          *int64 `json:"deptId"`
	DeptName        string `json:"deptName"`

	SignDate     string `json:"signDate"`
	Laycan       string `json:"laycan"`
	StartLaycan  string `json:"startLaycan"`
	EndLaycan    string `json:"endLaycan"`
	CurrencyCode string `json:"currencyCode"`

	FuelConsumptionRange string   `json:"fuelConsumptionRange"`
	HeavyFuelType        string   `json:"heavyFuelType"`
	HeavyFuelValue       *float64 `json:"heavyFuelValue"`
	LightFuelType        string   `json:"lightFuelType"`
	LightFuelValue       *float64 `json:"lightFuelValue"`
	FuelMethod           string   `json:"fuelMethod"`

	DeliveryVesselPort          string `json:"deliveryVesselPort"`
	RepayVesselPort             string `json:"repayVesselPort"`
	LoadingAndUnloadingPortName string `json:"loadingAndUnloadingPortName"`
	SailingRegion               string `json:"sailingRegion"`
	CharterPeriodDuration       string `json:"charterPeriodDuration"`
	LeaseAmountMethod           string `json:"leaseAmountMethod"`
	ExtraChargesCollection      string `json:"extraChargesCollection"`
	OtherPrecautions            string `json:"otherPrecautions"`
	DispatchClause              string `json:"dispatchClause"`
	GoodsName                   string `json:"goodsName"`

	IsMultipleRoutes       *int     `json:"isMultipleRoutes"`
	IsTotalHireAmount      *int     `json:"isTotalHireAmount"`
	CustomerCommissionType string   `json:"customerCommissionType"`
	CustomerCommissionAmt  *float64 `json:"customerCommissionAmt"`
	PaymentCycleNumber     *float64 `json:"paymentCycleNumber"`
	PaymentCycleType       string   `json:"paymentCycleType"`
	PaymentType            string   `json:"paymentType"`
	PaymentPeriod          string   `json:"paymentPeriod"`
	PaymentPeriodDay       *float64 `json:"paymentPeriodDay"`
	CargoRangeType         string   `json:"cargoRangeType"`
	CargoRangeValue        string   `json:"cargoRangeValue"`
	TotalAmount            *float64 `json:"totalAmount"`
	TotalCargoNumber       *float64 `json:"totalCargoNumber"`

	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`

	Routes      []ContractRoute   `json:"contractExternalRouteDTOS"`
	Payments    []ContractPayment `json:"contractExternalPaymentInfoDTOS"`
	Brokers     []ContractBroker  `json:"contractExternalBrokerInfoDTOS"`
	Freights    []ContractFreight `json:"contractExternalFreightInfoDTOS"`
	Attachments []FileAttachment  `json:"fileAttachmentDTOS"`
}

type ContractRoute struct {
	ID              int64               `json:"id"`
	Code            string              `json:"code"`
	VesselRouteName string              `json:"vesselRouteName"`
	Remark          string              `json:"remark"`
	Infos           []ContractRouteInfo `json:"contractExternalRouteInfoDTOS"`
}

// ContractRouteInfo is one rental leg of a route.
type ContractRouteInfo struct {
	ID             int64    `json:"id"`
	Code           string   `json:"code"`
	RentalType     string   `json:"rentalType"`
	RentalNumber   *float64 `json:"rentalNumber"`
	TimeType       string   `json:"timeType"`
	TimeRangeDay   string   `json:"timeRangeDay"`
	TimeRangeStart string   `json:"timeRangeStart"`
	TimeRangeEnd   string   `json:"timeRangeEnd"`
	IndexType      string   `json:"indexType"`
	Proportion     *float64 `json:"proportion"`
	UnloadRange    string   `json:"unloadRange"`
}

type ContractPayment struct {
	ID                 int64    `json:"id"`
	Code               string   `json:"code"`
	ExpenseSubjectCode string   `json:"expenseSubjectCode"`
	Amount             *float64 `json:"amount"`
	PaymentCycle       string   `json:"paymentCycle"`
	SplitRule          string   `json:"splitRule"`
}

type ContractBroker struct {
	ID                    int64    `json:"id"`
	Code                  string   `json:"code"`
	GuestBusinessCode     string   `json:"guestBusinessCode"`
	BrokerCommissionType  string   `json:"brokerCommissionType"`
	BrokerCommissionValue *float64 `json:"brokerCommissionValue"`
	IsClientSettlement    *int     `json:"isClientSettlement"`
}

type ContractFreight struct {
	ID                  int64    `json:"id"`
	Code                string   `json:"code"`
	FreightCategory     string   `json:"freightCategory"`
	GoodsCode           string   `json:"goodsCode"`
	GoodsNumber         *float64 `json:"goodsNumber"`
	Unit                string   `json:"unit"`
	LoadingPort         string   `json:"loadingPort"`
	LoadingPortName     string   `json:"loadingPortName"`
	UnloadingPort       string   `json:"unloadingPort"`
	UnloadingPortName   string   `json:"unloadingPortName"`
	FreightNumber       *float64 `json:"freightNumber"`
	ShippingTerms       string   `json:"shippingTerms"`
	AdvancePaymentRatio *float64 `json:"advancePaymentRatio"`
	FreightTotalNumber  *float64 `json:"freightTotalNumber"`
}
