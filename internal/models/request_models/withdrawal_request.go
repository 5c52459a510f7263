package request_models

type WithdrawalAccountDetails struct {
	AccountNumber     string `json:"account_number"`
	IfscCode          string `json:"ifsc_code"`
	AccountHolderName string `json:"account_holder_name"`
	UpiID             string `json:"upi_id"`
}

type WithdrawRequest struct {
	Amount         int64                    `json:"amount" binding:"required,gt=0"`
	Method         string                   `json:"method" binding:"required,oneof=bank_transfer upi"`
	AccountDetails WithdrawalAccountDetails `json:"account_details"`
}
