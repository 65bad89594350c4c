package models

// Categories
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryUtilities     = "Utilities"
	CategoryHealth        = "Health"
	CategorySalary        = "Salary"
	CategoryOther         = "Other"
)

// Defaults applied when a receipt lacks a field.
const (
	DefaultMerchant = "Unknown"
)

// Transaction types
const (
	TransactionTypeExpense = "expense"
	TransactionTypeIncome  = "income"
)

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
	PermissionExport    = 0644
)
