package account

// AccountOpened indicates that a new account has been opened
// Balance is the validated initial balance in minor units
type AccountOpened struct {
	AccountID string
	Kind      string
	Holder    string
	Balance   int64
}

// DepositMade indicates that a deposit has been made
// Balance is the resulting account balance
type DepositMade struct {
	AccountID string
	Amount    int64
	Balance   int64
}

// WithdrawalMade indicates that a withdrawal has been made
// Balance is the resulting account balance
type WithdrawalMade struct {
	AccountID string
	Amount    int64
	Balance   int64
}
