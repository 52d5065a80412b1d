package models

// PaymentOrder is the payment order detail.
type PaymentOrder struct {
	ID               int64    `json:"id"`
	Code             string   `json:"code"`
	PaymentNo        string   `json:"paymentNo"`
	Billno           string   `json:"billno"`
	ContractCode     string   `json:"contractCode"`
	ContractNo       string   `json:"contractNo"`
	Status           *int     `json:"status"`
	PayType          string   `json:"payType"`
	ApplyAmt         *float64 `json:"applyAmt"`
	PrePaidAmount    *float64 `json:"prePaidAmount"`
	Currency         string   `json:"currency"`
	Payee            string   `json:"payee"`
	PayeeCountry     string   `json:"payeeCountry"`
	Payer            string   `json:"payer"`
	PayerBankAccount string   `json:"payerBankAccount"`
	PayItem          string   `json:"payItem"`
	SettleMethod     string   `json:"settleMethod"`
	FeeBearType      string   `json:"feeBearType"`
	LatestPayDate    string   `json:"latestPayDate"`
	PaySuccessTime   string   `json:"paySuccessTime"`
	UrgentFlag       *int     `json:"urgentFlag"`
	PrepaymentFlag   *int     `json:"prepaymentFlag"`
	VoyageSettleFlag *int     `json:"voyageSettleFlag"`
	CharterDirection *int     `json:"charterDirection"`
	CharterType      *int     `json:"charterType"`
	BusinessModel    *int     `json:"businessModel"`
	VesselCode       string   `json:"vesselCode"`
	VesselName       string   `json:"vesselName"`
	VoyageCode       string   `json:"voyageCode"`
	PortName         string   `json:"portName"`
	RentalPeriod     string   `json:"rentalPeriod"`
	Remark           string   `json:"remark"`
	FinanceDesc      string   `json:"financeDesc"`
	RejectReason     string   `json:"rejectReason"`
	WithdrawReason   string   `json:"withdrawReason"`
	CreateTime       string   `json:"createTime"`

	AccountType           string `json:"accountType"`
	BankAccount           string `json:"bankAccount"`
	BankAccountName       string `json:"bankAccountName"`
	BankAddress           string `json:"bankAddress"`
	BankName              string `json:"bankName"`
	SwiftCode             string `json:"swiftCode"`
	IntermediateBankFlag  *int   `json:"intermediateBankFlag"`
	IntermediateBankName  string `json:"intermediateBankName"`
	IntermediateSwiftCode string `json:"intermediateSwiftCode"`

	BankReceipts   []BankReceipt          `json:"bankReceiptList"`
	FeeDetails     []FeeDetail            `json:"feeDetailList"`
	ApprovalOrders []PaymentApprovalOrder `json:"paymentApprovalOrderList"`
	Attachments    []FileAttachment       `json:"fileAttachmentDTOS"`
}

type BankReceipt struct {
	ID               int64    `json:"id"`
	Code             string   `json:"code"`
	ActualPayAccount string   `json:"actualPayAccount"`
	ActualPayCompany string   `json:"actualPayCompany"`
	Amount           *float64 `json:"amount"`
	BankFlowNo       string   `json:"bankFlowNo"`
	PayStatus        *int     `json:"payStatus"`
	ReceiptFileURL   string   `json:"receiptFileUrl"`
	Type             *int     `json:"type"`
	CreateTime       string   `json:"createTime"`
}

type PaymentApprovalOrder struct {
	ID            int64    `json:"id"`
	Code          string   `json:"code"`
	ApprovalNo    string   `json:"approvalNo"`
	ApplyAmt      *float64 `json:"applyAmt"`
	Currency      string   `json:"currency"`
	Payee         string   `json:"payee"`
	Status        *int     `json:"status"`
	PayItem       string   `json:"payItem"`
	LatestPayDate string   `json:"latestPayDate"`
	CreateTime    string   `json:"createTime"`
}

// FeeDetail is one fee line of a payment order or verification.
type FeeDetail struct {
	ID                    int64            `json:"id"`
	Code                  string           `json:"code"`
	VesselCode            string           `json:"vesselCode"`
	VesselName            string           `json:"vesselName"`
	VoyageCode            string           `json:"voyageCode"`
	VoyageNo              string           `json:"voyageNo"`
	SubjectCode           string           `json:"subjectCode"`
	SubjectName           string           `json:"subjectName"`
	CategoryCode          string           `json:"categoryCode"`
	CategoryName          string           `json:"categoryName"`
	ReceiptAmt            *float64         `json:"receiptAmt"`
	AmountWithoutTax      *float64         `json:"amountWithoutTax"`
	TaxIncludeAmount      *float64         `json:"taxIncludeAmount"`
	CurrencyCode          string           `json:"currencyCode"`
	CurrencyName          string           `json:"currencyName"`
	SettlementUnit        string           `json:"settlementUnit"`
	CounterSettlementUnit string           `json:"counterSettlementUnit"`
	CharterDirection      string           `json:"charterDirection"`
	CharterDirectionName  string           `json:"charterDirectionName"`
	CalculationNote       string           `json:"calculationNote"`
	CargoDamageReason     string           `json:"cargoDamageReason"`
	FeeExplain            string           `json:"feeExplain"`
	Remark                string           `json:"remark"`
	VoyageStartTime       string           `json:"voyageStartTime"`
	VoyageEndTime         string           `json:"voyageEndTime"`
	LoadPortCode          string           `json:"loadPortCode"`
	DischargePortCode     string           `json:"dischargePortCode"`
	GoodsCode             string           `json:"goodsCode"`
	ActualCargoVolume     *float64         `json:"actualCargoVolume"`
	RentalPeriod          string           `json:"rentalPeriod"`
	RentalStartTime       string           `json:"rentalStartTime"`
	RentalEndTime         string           `json:"rentalEndTime"`
	RentDeductionRatio    *float64         `json:"rentDeductionRatio"`
	PortCode              string           `json:"portCode"`
	PortName              string           `json:"portName"`
	PortCountry           string           `json:"portCountry"`
	CountryName           string           `json:"countryName"`
	PortGoal              string           `json:"portGoal"`
	ExecutionSort         *int             `json:"executionSort"`
	PlannedArrivalDate    string           `json:"plannedArrivalDate"`
	PlannedDepartureDate  string           `json:"plannedDepartureDate"`
	FeeStandard           string           `json:"feeStandard"`
	ContractNo            string           `json:"contractNo"`
	Attachments           []FileAttachment `json:"fileAttachmentDTOS"`
}

// ReceiptOffset is the verification (receipt offset) application detail.
type ReceiptOffset struct {
	ID               int64            `json:"id"`
	Code             string           `json:"code"`
	OffsetNo         string           `json:"offsetNo"`
	VerificationType *int             `json:"verificationType"`
	BizItemType      string           `json:"bizItemType"`
	Status           *int             `json:"status"`
	SettleMethod     string           `json:"settleMethod"`
	Payer            string           `json:"payer"`
	Payee            string           `json:"payee"`
	ReceiptAmt       *float64         `json:"receiptAmt"`
	OffsetAmt        *float64         `json:"offsetAmt"`
	CurrencyCode     string           `json:"currencyCode"`
	BankFlowNo       string           `json:"bankFlowNo"`
	ReceiptDate      string           `json:"receiptDate"`
	ApplicantName    string           `json:"applicantName"`
	DeptName         string           `json:"deptName"`
	Remark           string           `json:"remark"`
	CreateTime       string           `json:"createTime"`
	FeeDetails       []FeeDetail      `json:"feeDetailList"`
	BankReceipts     []BankReceipt    `json:"bankReceiptList"`
	Attachments      []FileAttachment `json:"fileAttachmentDTOS"`
}
