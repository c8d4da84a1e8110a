package models

// Bank is a partner bank where payments are deposited.
type Bank struct {
	BankID        string `json:"bankID"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	AuditFields
}

// PaymentMode is a settlement mode code.
type PaymentMode struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	AuditFields
}

// Store is a warehouse / magasin holding stock.
type Store struct {
	StoreID string `json:"storeID"`
	Name    string `json:"name"`
	Service string `json:"service"`
	AuditFields
}

// Article is a stock-keeping item.
type Article struct {
	ArticleID   string `json:"articleID"`
	Code        string `json:"code"`
	Designation string `json:"designation"`
	Unit        string `json:"unit"`
	AuditFields
}

// Client is an importer / customer invoiced by the operator.
type Client struct {
	ClientID string `json:"clientID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	AuditFields
}

// Employee is a staff member managed by HR.
type Employee struct {
	EmployeeID string `json:"employeeID"`
	Code       string `json:"code"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Service    string `json:"service"`
	AuditFields
}

// Vehicle is an engin subject to maintenance requisitions.
type Vehicle struct {
	VehicleID   string `json:"vehicleID"`
	Plate       string `json:"plate"`
	Designation string `json:"designation"`
	MeterType   string `json:"meterType"`
	AuditFields
}
