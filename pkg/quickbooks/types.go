package quickbooks

import "time"

// Ref is a reference to another entity by ID, with an optional display name.
type Ref struct {
	Value string `json:"value"          yaml:"value"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
}

// MemoRef carries a free-form memo value.
type MemoRef struct {
	Value string `json:"value" yaml:"value"`
}

// EmailAddress holds an email address.
type EmailAddress struct {
	Address string `json:"Address" yaml:"address"`
}

// TelephoneNumber holds a free-form phone number.
type TelephoneNumber struct {
	FreeFormNumber string `json:"FreeFormNumber" yaml:"free_form_number"`
}

// WebSiteAddress holds a website URI.
type WebSiteAddress struct {
	URI string `json:"URI" yaml:"uri"`
}

// PhysicalAddress is a postal address.
type PhysicalAddress struct {
	ID                     string `json:"Id,omitempty"                     yaml:"id,omitempty"`
	Line1                  string `json:"Line1,omitempty"                  yaml:"line1,omitempty"`
	Line2                  string `json:"Line2,omitempty"                  yaml:"line2,omitempty"`
	City                   string `json:"City,omitempty"                   yaml:"city,omitempty"`
	CountrySubDivisionCode string `json:"CountrySubDivisionCode,omitempty" yaml:"country_sub_division_code,omitempty"`
	PostalCode             string `json:"PostalCode,omitempty"             yaml:"postal_code,omitempty"`
	Country                string `json:"Country,omitempty"                yaml:"country,omitempty"`
}

// ModificationMetaData carries server-maintained timestamps.
type ModificationMetaData struct {
	CreateTime      time.Time `json:"CreateTime,omitempty"      yaml:"create_time,omitempty"`
	LastUpdatedTime time.Time `json:"LastUpdatedTime,omitempty" yaml:"last_updated_time,omitempty"`
}

// LinkedTxn links a line to another transaction.
type LinkedTxn struct {
	TxnID   string `json:"TxnId"   yaml:"txn_id"`
	TxnType string `json:"TxnType" yaml:"txn_type"`
}

// SalesItemLineDetail describes a sales line on invoices and payments.
type SalesItemLineDetail struct {
	ItemRef    *Ref    `json:"ItemRef,omitempty"    yaml:"item_ref,omitempty"`
	Qty        float64 `json:"Qty,omitempty"        yaml:"qty,omitempty"`
	UnitPrice  float64 `json:"UnitPrice,omitempty"  yaml:"unit_price,omitempty"`
	TaxCodeRef *Ref    `json:"TaxCodeRef,omitempty" yaml:"tax_code_ref,omitempty"`
}

// AccountBasedExpenseLineDetail describes an expense line on bills.
type AccountBasedExpenseLineDetail struct {
	AccountRef  *Ref   `json:"AccountRef,omitempty"  yaml:"account_ref,omitempty"`
	TaxCodeRef  *Ref   `json:"TaxCodeRef,omitempty"  yaml:"tax_code_ref,omitempty"`
	CustomerRef *Ref   `json:"CustomerRef,omitempty" yaml:"customer_ref,omitempty"`
	BillableStatus string `json:"BillableStatus,omitempty" yaml:"billable_status,omitempty"`
}

// Line is a transaction line item.
type Line struct {
	ID          string  `json:"Id,omitempty"          yaml:"id,omitempty"`
	LineNum     int     `json:"LineNum,omitempty"     yaml:"line_num,omitempty"`
	Description string  `json:"Description,omitempty" yaml:"description,omitempty"`
	Amount      float64 `json:"Amount"                yaml:"amount"`
	DetailType  string  `json:"DetailType"            yaml:"detail_type"`

	SalesItemLineDetail           *SalesItemLineDetail           `json:"SalesItemLineDetail,omitempty"           yaml:"sales_item_line_detail,omitempty"`
	AccountBasedExpenseLineDetail *AccountBasedExpenseLineDetail `json:"AccountBasedExpenseLineDetail,omitempty" yaml:"account_based_expense_line_detail,omitempty"`
	LinkedTxn                     []LinkedTxn                    `json:"LinkedTxn,omitempty"                     yaml:"linked_txn,omitempty"`
}

// Invoice represents a QuickBooks invoice.
type Invoice struct {
	ID        string                `json:"Id,omitempty"        yaml:"id,omitempty"`
	SyncToken string                `json:"SyncToken,omitempty" yaml:"sync_token,omitempty"`
	MetaData  *ModificationMetaData `json:"MetaData,omitempty"  yaml:"meta_data,omitempty"`

	DocNumber    string        `json:"DocNumber,omitempty"    yaml:"doc_number,omitempty"`
	TxnDate      string        `json:"TxnDate,omitempty"      yaml:"txn_date,omitempty"`
	DueDate      string        `json:"DueDate,omitempty"      yaml:"due_date,omitempty"`
	CustomerRef  *Ref          `json:"CustomerRef,omitempty"  yaml:"customer_ref,omitempty"`
	CustomerMemo *MemoRef      `json:"CustomerMemo,omitempty" yaml:"customer_memo,omitempty"`
	BillEmail    *EmailAddress `json:"BillEmail,omitempty"    yaml:"bill_email,omitempty"`
	BillAddr     *PhysicalAddress `json:"BillAddr,omitempty"  yaml:"bill_addr,omitempty"`
	ShipAddr     *PhysicalAddress `json:"ShipAddr,omitempty"  yaml:"ship_addr,omitempty"`
	Line         []Line        `json:"Line,omitempty"         yaml:"line,omitempty"`
	PrivateNote  string        `json:"PrivateNote,omitempty"  yaml:"private_note,omitempty"`
	TotalAmt     float64       `json:"TotalAmt,omitempty"     yaml:"total_amt,omitempty"`
	Balance      float64       `json:"Balance,omitempty"      yaml:"balance,omitempty"`
	Deposit      float64       `json:"Deposit,omitempty"      yaml:"deposit,omitempty"`
}

// Customer represents a QuickBooks customer.
type Customer struct {
	ID        string                `json:"Id,omitempty"        yaml:"id,omitempty"`
	SyncToken string                `json:"SyncToken,omitempty" yaml:"sync_token,omitempty"`
	MetaData  *ModificationMetaData `json:"MetaData,omitempty"  yaml:"meta_data,omitempty"`

	DisplayName      string           `json:"DisplayName,omitempty"      yaml:"display_name,omitempty"`
	GivenName        string           `json:"GivenName,omitempty"        yaml:"given_name,omitempty"`
	FamilyName       string           `json:"FamilyName,omitempty"       yaml:"family_name,omitempty"`
	CompanyName      string           `json:"CompanyName,omitempty"      yaml:"company_name,omitempty"`
	Active           bool             `json:"Active,omitempty"           yaml:"active,omitempty"`
	Taxable          bool             `json:"Taxable,omitempty"          yaml:"taxable,omitempty"`
	Notes            string           `json:"Notes,omitempty"            yaml:"notes,omitempty"`
	PrimaryEmailAddr *EmailAddress    `json:"PrimaryEmailAddr,omitempty" yaml:"primary_email_addr,omitempty"`
	PrimaryPhone     *TelephoneNumber `json:"PrimaryPhone,omitempty"     yaml:"primary_phone,omitempty"`
	WebAddr          *WebSiteAddress  `json:"WebAddr,omitempty"          yaml:"web_addr,omitempty"`
	BillAddr         *PhysicalAddress `json:"BillAddr,omitempty"         yaml:"bill_addr,omitempty"`
	ShipAddr         *PhysicalAddress `json:"ShipAddr,omitempty"         yaml:"ship_addr,omitempty"`
	Balance          float64          `json:"Balance,omitempty"          yaml:"balance,omitempty"`
}

// Payment represents a QuickBooks payment.
type Payment struct {
	ID        string                `json:"Id,omitempty"        yaml:"id,omitempty"`
	SyncToken string                `json:"SyncToken,omitempty" yaml:"sync_token,omitempty"`
	MetaData  *ModificationMetaData `json:"MetaData,omitempty"  yaml:"meta_data,omitempty"`

	TxnDate             string  `json:"TxnDate,omitempty"             yaml:"txn_date,omitempty"`
	CustomerRef         *Ref    `json:"CustomerRef,omitempty"         yaml:"customer_ref,omitempty"`
	DepositToAccountRef *Ref    `json:"DepositToAccountRef,omitempty" yaml:"deposit_to_account_ref,omitempty"`
	PaymentRefNum       string  `json:"PaymentRefNum,omitempty"       yaml:"payment_ref_num,omitempty"`
	TotalAmt            float64 `json:"TotalAmt,omitempty"            yaml:"total_amt,omitempty"`
	UnappliedAmt        float64 `json:"UnappliedAmt,omitempty"        yaml:"unapplied_amt,omitempty"`
	Line                []Line  `json:"Line,omitempty"                yaml:"line,omitempty"`
}

// Vendor represents a QuickBooks vendor.
type Vendor struct {
	ID        string                `json:"Id,omitempty"        yaml:"id,omitempty"`
	SyncToken string                `json:"SyncToken,omitempty" yaml:"sync_token,omitempty"`
	MetaData  *ModificationMetaData `json:"MetaData,omitempty"  yaml:"meta_data,omitempty"`

	DisplayName      string           `json:"DisplayName,omitempty"      yaml:"display_name,omitempty"`
	GivenName        string           `json:"GivenName,omitempty"        yaml:"given_name,omitempty"`
	FamilyName       string           `json:"FamilyName,omitempty"       yaml:"family_name,omitempty"`
	CompanyName      string           `json:"CompanyName,omitempty"      yaml:"company_name,omitempty"`
	Active           bool             `json:"Active,omitempty"           yaml:"active,omitempty"`
	Vendor1099       bool             `json:"Vendor1099,omitempty"       yaml:"vendor_1099,omitempty"`
	AcctNum          string           `json:"AcctNum,omitempty"          yaml:"acct_num,omitempty"`
	PrimaryEmailAddr *EmailAddress    `json:"PrimaryEmailAddr,omitempty" yaml:"primary_email_addr,omitempty"`
	PrimaryPhone     *TelephoneNumber `json:"PrimaryPhone,omitempty"     yaml:"primary_phone,omitempty"`
	BillAddr         *PhysicalAddress `json:"BillAddr,omitempty"         yaml:"bill_addr,omitempty"`
	Balance          float64          `json:"Balance,omitempty"          yaml:"balance,omitempty"`
}

// Bill represents a QuickBooks bill.
type Bill struct {
	ID        string                `json:"Id,omitempty"        yaml:"id,omitempty"`
	SyncToken string                `json:"SyncToken,omitempty" yaml:"sync_token,omitempty"`
	MetaData  *ModificationMetaData `json:"MetaData,omitempty"  yaml:"meta_data,omitempty"`

	VendorRef    *Ref    `json:"VendorRef,omitempty"    yaml:"vendor_ref,omitempty"`
	APAccountRef *Ref    `json:"APAccountRef,omitempty" yaml:"ap_account_ref,omitempty"`
	TxnDate      string  `json:"TxnDate,omitempty"      yaml:"txn_date,omitempty"`
	DueDate      string  `json:"DueDate,omitempty"      yaml:"due_date,omitempty"`
	Line         []Line  `json:"Line,omitempty"         yaml:"line,omitempty"`
	TotalAmt     float64 `json:"TotalAmt,omitempty"     yaml:"total_amt,omitempty"`
	Balance      float64 `json:"Balance,omitempty"      yaml:"balance,omitempty"`
}

// Item represents a QuickBooks product or service item.
type Item struct {
	ID        string                `json:"Id,omitempty"        yaml:"id,omitempty"`
	SyncToken string                `json:"SyncToken,omitempty" yaml:"sync_token,omitempty"`
	MetaData  *ModificationMetaData `json:"MetaData,omitempty"  yaml:"meta_data,omitempty"`

	Name              string  `json:"Name,omitempty"              yaml:"name,omitempty"`
	SKU               string  `json:"Sku,omitempty"               yaml:"sku,omitempty"`
	Description       string  `json:"Description,omitempty"       yaml:"description,omitempty"`
	Active            bool    `json:"Active,omitempty"            yaml:"active,omitempty"`
	Taxable           bool    `json:"Taxable,omitempty"           yaml:"taxable,omitempty"`
	Type              string  `json:"Type,omitempty"              yaml:"type,omitempty"`
	UnitPrice         float64 `json:"UnitPrice,omitempty"         yaml:"unit_price,omitempty"`
	PurchaseCost      float64 `json:"PurchaseCost,omitempty"      yaml:"purchase_cost,omitempty"`
	TrackQtyOnHand    bool    `json:"TrackQtyOnHand,omitempty"    yaml:"track_qty_on_hand,omitempty"`
	QtyOnHand         float64 `json:"QtyOnHand,omitempty"         yaml:"qty_on_hand,omitempty"`
	IncomeAccountRef  *Ref    `json:"IncomeAccountRef,omitempty"  yaml:"income_account_ref,omitempty"`
	ExpenseAccountRef *Ref    `json:"ExpenseAccountRef,omitempty" yaml:"expense_account_ref,omitempty"`
	AssetAccountRef   *Ref    `json:"AssetAccountRef,omitempty"   yaml:"asset_account_ref,omitempty"`
}

// Account represents a QuickBooks chart-of-accounts entry.
type Account struct {
	ID        string                `json:"Id,omitempty"        yaml:"id,omitempty"`
	SyncToken string                `json:"SyncToken,omitempty" yaml:"sync_token,omitempty"`
	MetaData  *ModificationMetaData `json:"MetaData,omitempty"  yaml:"meta_data,omitempty"`

	Name           string  `json:"Name,omitempty"           yaml:"name,omitempty"`
	AcctNum        string  `json:"AcctNum,omitempty"        yaml:"acct_num,omitempty"`
	AccountType    string  `json:"AccountType,omitempty"    yaml:"account_type,omitempty"`
	AccountSubType string  `json:"AccountSubType,omitempty" yaml:"account_sub_type,omitempty"`
	Classification string  `json:"Classification,omitempty" yaml:"classification,omitempty"`
	Description    string  `json:"Description,omitempty"    yaml:"description,omitempty"`
	Active         bool    `json:"Active,omitempty"         yaml:"active,omitempty"`
	CurrentBalance float64 `json:"CurrentBalance,omitempty" yaml:"current_balance,omitempty"`
	CurrencyRef    *Ref    `json:"CurrencyRef,omitempty"    yaml:"currency_ref,omitempty"`
}

// CompanyInfo represents the company record for a realm.
type CompanyInfo struct {
	ID        string                `json:"Id,omitempty"        yaml:"id,omitempty"`
	SyncToken string                `json:"SyncToken,omitempty" yaml:"sync_token,omitempty"`
	MetaData  *ModificationMetaData `json:"MetaData,omitempty"  yaml:"meta_data,omitempty"`

	CompanyName          string           `json:"CompanyName,omitempty"          yaml:"company_name,omitempty"`
	LegalName            string           `json:"LegalName,omitempty"            yaml:"legal_name,omitempty"`
	Country              string           `json:"Country,omitempty"              yaml:"country,omitempty"`
	CompanyStartDate     string           `json:"CompanyStartDate,omitempty"     yaml:"company_start_date,omitempty"`
	FiscalYearStartMonth string           `json:"FiscalYearStartMonth,omitempty" yaml:"fiscal_year_start_month,omitempty"`
	CompanyAddr          *PhysicalAddress `json:"CompanyAddr,omitempty"          yaml:"company_addr,omitempty"`
	Email                *EmailAddress    `json:"Email,omitempty"                yaml:"email,omitempty"`
	WebAddr              *WebSiteAddress  `json:"WebAddr,omitempty"              yaml:"web_addr,omitempty"`
}
