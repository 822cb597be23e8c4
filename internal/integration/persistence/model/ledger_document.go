// Package model defines the storage representation of the shared ledger
// document. Amounts travel as float64 for compatibility with the document
// stores; the entity layer converts them back to exact decimals.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
)

// EditLogModel is one edit-history entry.
type EditLogModel struct {
	User string    `json:"user" firestore:"user"`
	Date time.Time `json:"date" firestore:"date"`
}

// TransactionModel is the stored form of a ledger transaction.
type TransactionModel struct {
	ID           string         `json:"id" firestore:"id"`
	Type         string         `json:"type" firestore:"type"`
	MainCategory string         `json:"mainCategory" firestore:"mainCategory"`
	SubCategory  string         `json:"subCategory" firestore:"subCategory"`
	Amount       float64        `json:"amount" firestore:"amount"`
	Medium       string         `json:"medium" firestore:"medium"`
	Date         time.Time      `json:"date" firestore:"date"`
	Notes        string         `json:"notes" firestore:"notes"`
	Payee        string         `json:"payee" firestore:"payee"`
	RecordedBy   string         `json:"recordedBy" firestore:"recordedBy"`
	Edits        []EditLogModel `json:"edits,omitempty" firestore:"edits,omitempty"`
}

// AdditionalCostModel is one stored loan fee.
type AdditionalCostModel struct {
	Description string  `json:"description" firestore:"description"`
	Amount      float64 `json:"amount" firestore:"amount"`
}

// RepaymentModel is one stored loan payment.
type RepaymentModel struct {
	Amount float64   `json:"amount" firestore:"amount"`
	Date   time.Time `json:"date" firestore:"date"`
}

// BorrowingModel is the stored form of a loan.
type BorrowingModel struct {
	ID              string                `json:"id" firestore:"id"`
	LenderName      string                `json:"lenderName" firestore:"lenderName"`
	Principal       float64               `json:"principal" firestore:"principal"`
	Interest        float64               `json:"interest" firestore:"interest"`
	AdditionalCosts []AdditionalCostModel `json:"additionalCosts" firestore:"additionalCosts"`
	LoanDate        time.Time             `json:"loanDate" firestore:"loanDate"`
	ReturnDate      time.Time             `json:"returnDate" firestore:"returnDate"`
	Repayments      []RepaymentModel      `json:"repayments" firestore:"repayments"`
	Status          string                `json:"status" firestore:"status"`
}

// BudgetModel is the stored form of a category budget.
type BudgetModel struct {
	ID       string  `json:"id" firestore:"id"`
	Category string  `json:"category" firestore:"category"`
	Limit    float64 `json:"limit" firestore:"limit"`
}

// TemplateTransactionModel is the reusable transaction part of a template.
type TemplateTransactionModel struct {
	Type         string  `json:"type" firestore:"type"`
	MainCategory string  `json:"mainCategory" firestore:"mainCategory"`
	SubCategory  string  `json:"subCategory" firestore:"subCategory"`
	Amount       float64 `json:"amount" firestore:"amount"`
	Medium       string  `json:"medium" firestore:"medium"`
	Notes        string  `json:"notes" firestore:"notes"`
	Payee        string  `json:"payee" firestore:"payee"`
}

// TemplateModel is the stored form of a named template.
type TemplateModel struct {
	Name        string                   `json:"name" firestore:"name"`
	Transaction TemplateTransactionModel `json:"transaction" firestore:"transaction"`
}

// SettingsModel is the stored form of the settings singleton.
type SettingsModel struct {
	Theme        string `json:"theme" firestore:"theme"`
	Currency     string `json:"currency" firestore:"currency"`
	PinHash      string `json:"pinHash" firestore:"pinHash"`
	VoiceEnabled bool   `json:"voiceEnabled" firestore:"voiceEnabled"`
}

// LedgerDocumentModel is the whole stored ledger document.
type LedgerDocumentModel struct {
	Transactions []TransactionModel `json:"transactions" firestore:"transactions"`
	Borrowings   []BorrowingModel   `json:"borrowings" firestore:"borrowings"`
	Settings     SettingsModel      `json:"settings" firestore:"settings"`
	Budgets      []BudgetModel      `json:"budgets" firestore:"budgets"`
	Templates    []TemplateModel    `json:"templates" firestore:"templates"`
}

// FromEntityTransaction converts an entity transaction to its stored form.
func FromEntityTransaction(t entity.Transaction) TransactionModel {
	edits := make([]EditLogModel, len(t.Edits))
	for i, e := range t.Edits {
		edits[i] = EditLogModel{User: e.User, Date: e.Date}
	}
	amount, _ := t.Amount.Float64()
	return TransactionModel{
		ID:           t.ID.String(),
		Type:         string(t.Type),
		MainCategory: string(t.MainCategory),
		SubCategory:  t.SubCategory,
		Amount:       amount,
		Medium:       string(t.Medium),
		Date:         t.Date,
		Notes:        t.Notes,
		Payee:        t.Payee,
		RecordedBy:   t.RecordedBy,
		Edits:        edits,
	}
}

// ToEntity converts the stored transaction back to its entity form. An
// unparseable ID becomes a fresh one rather than failing the whole load.
func (m TransactionModel) ToEntity() entity.Transaction {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		id = uuid.New()
	}
	edits := make([]entity.EditLog, len(m.Edits))
	for i, e := range m.Edits {
		edits[i] = entity.EditLog{User: e.User, Date: e.Date}
	}
	return entity.Transaction{
		ID:           id,
		Type:         entity.TransactionType(m.Type),
		MainCategory: entity.MainCategory(m.MainCategory),
		SubCategory:  m.SubCategory,
		Amount:       decimal.NewFromFloat(m.Amount),
		Medium:       entity.Medium(m.Medium),
		Date:         m.Date,
		Notes:        m.Notes,
		Payee:        m.Payee,
		RecordedBy:   m.RecordedBy,
		Edits:        edits,
	}
}

// FromEntityBorrowing converts an entity borrowing to its stored form.
func FromEntityBorrowing(b entity.Borrowing) BorrowingModel {
	costs := make([]AdditionalCostModel, len(b.AdditionalCosts))
	for i, c := range b.AdditionalCosts {
		amount, _ := c.Amount.Float64()
		costs[i] = AdditionalCostModel{Description: c.Description, Amount: amount}
	}
	repayments := make([]RepaymentModel, len(b.Repayments))
	for i, r := range b.Repayments {
		amount, _ := r.Amount.Float64()
		repayments[i] = RepaymentModel{Amount: amount, Date: r.Date}
	}
	principal, _ := b.Principal.Float64()
	interest, _ := b.Interest.Float64()
	return BorrowingModel{
		ID:              b.ID.String(),
		LenderName:      b.LenderName,
		Principal:       principal,
		Interest:        interest,
		AdditionalCosts: costs,
		LoanDate:        b.LoanDate,
		ReturnDate:      b.ReturnDate,
		Repayments:      repayments,
		Status:          string(b.Status),
	}
}

// ToEntity converts the stored borrowing back to its entity form. The
// status is re-derived from the repayment history instead of trusted.
func (m BorrowingModel) ToEntity() entity.Borrowing {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		id = uuid.New()
	}
	costs := make([]entity.AdditionalCost, len(m.AdditionalCosts))
	for i, c := range m.AdditionalCosts {
		costs[i] = entity.AdditionalCost{Description: c.Description, Amount: decimal.NewFromFloat(c.Amount)}
	}
	repayments := make([]entity.Repayment, len(m.Repayments))
	for i, r := range m.Repayments {
		repayments[i] = entity.Repayment{Amount: decimal.NewFromFloat(r.Amount), Date: r.Date}
	}
	b := entity.Borrowing{
		ID:              id,
		LenderName:      m.LenderName,
		Principal:       decimal.NewFromFloat(m.Principal),
		Interest:        decimal.NewFromFloat(m.Interest),
		AdditionalCosts: costs,
		LoanDate:        m.LoanDate,
		ReturnDate:      m.ReturnDate,
		Repayments:      repayments,
	}
	b.Status = b.DeriveStatus()
	return b
}

// FromEntityBudget converts an entity budget to its stored form.
func FromEntityBudget(b entity.Budget) BudgetModel {
	limit, _ := b.Limit.Float64()
	return BudgetModel{ID: b.ID.String(), Category: string(b.Category), Limit: limit}
}

// ToEntity converts the stored budget back to its entity form.
func (m BudgetModel) ToEntity() entity.Budget {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		id = uuid.New()
	}
	return entity.Budget{
		ID:       id,
		Category: entity.MainCategory(m.Category),
		Limit:    decimal.NewFromFloat(m.Limit),
	}
}

// FromEntityTemplate converts an entity template to its stored form.
func FromEntityTemplate(t entity.Template) TemplateModel {
	amount, _ := t.Transaction.Amount.Float64()
	return TemplateModel{
		Name: t.Name,
		Transaction: TemplateTransactionModel{
			Type:         string(t.Transaction.Type),
			MainCategory: string(t.Transaction.MainCategory),
			SubCategory:  t.Transaction.SubCategory,
			Amount:       amount,
			Medium:       string(t.Transaction.Medium),
			Notes:        t.Transaction.Notes,
			Payee:        t.Transaction.Payee,
		},
	}
}

// ToEntity converts the stored template back to its entity form.
func (m TemplateModel) ToEntity() entity.Template {
	return entity.Template{
		Name: m.Name,
		Transaction: entity.TemplateTransaction{
			Type:         entity.TransactionType(m.Transaction.Type),
			MainCategory: entity.MainCategory(m.Transaction.MainCategory),
			SubCategory:  m.Transaction.SubCategory,
			Amount:       decimal.NewFromFloat(m.Transaction.Amount),
			Medium:       entity.Medium(m.Transaction.Medium),
			Notes:        m.Transaction.Notes,
			Payee:        m.Transaction.Payee,
		},
	}
}

// FromEntitySettings converts entity settings to their stored form.
func FromEntitySettings(s entity.Settings) SettingsModel {
	return SettingsModel{
		Theme:        string(s.Theme),
		Currency:     string(s.Currency),
		PinHash:      s.PinHash,
		VoiceEnabled: s.VoiceEnabled,
	}
}

// ToEntity converts stored settings back to their entity form, filling
// defaults for fields older documents may lack.
func (m SettingsModel) ToEntity() entity.Settings {
	s := entity.Settings{
		Theme:        entity.Theme(m.Theme),
		Currency:     entity.Currency(m.Currency),
		PinHash:      m.PinHash,
		VoiceEnabled: m.VoiceEnabled,
	}
	if s.Theme == "" {
		s.Theme = entity.DefaultSettings().Theme
	}
	if s.Currency == "" {
		s.Currency = entity.DefaultSettings().Currency
	}
	return s
}

// FromEntityDocument converts a whole entity document to its stored form.
func FromEntityDocument(d entity.LedgerDocument) LedgerDocumentModel {
	m := LedgerDocumentModel{
		Transactions: make([]TransactionModel, len(d.Transactions)),
		Borrowings:   make([]BorrowingModel, len(d.Borrowings)),
		Settings:     FromEntitySettings(d.Settings),
		Budgets:      make([]BudgetModel, len(d.Budgets)),
		Templates:    make([]TemplateModel, len(d.Templates)),
	}
	for i, t := range d.Transactions {
		m.Transactions[i] = FromEntityTransaction(t)
	}
	for i, b := range d.Borrowings {
		m.Borrowings[i] = FromEntityBorrowing(b)
	}
	for i, b := range d.Budgets {
		m.Budgets[i] = FromEntityBudget(b)
	}
	for i, t := range d.Templates {
		m.Templates[i] = FromEntityTemplate(t)
	}
	return m
}

// ToEntity converts a whole stored document back to its entity form.
func (m LedgerDocumentModel) ToEntity() entity.LedgerDocument {
	d := entity.LedgerDocument{
		Transactions: make([]entity.Transaction, len(m.Transactions)),
		Borrowings:   make([]entity.Borrowing, len(m.Borrowings)),
		Settings:     m.Settings.ToEntity(),
		Budgets:      make([]entity.Budget, len(m.Budgets)),
		Templates:    make([]entity.Template, len(m.Templates)),
	}
	for i, t := range m.Transactions {
		d.Transactions[i] = t.ToEntity()
	}
	for i, b := range m.Borrowings {
		d.Borrowings[i] = b.ToEntity()
	}
	for i, b := range m.Budgets {
		d.Budgets[i] = b.ToEntity()
	}
	for i, t := range m.Templates {
		d.Templates[i] = t.ToEntity()
	}
	entity.SortTransactionsByDateDesc(d.Transactions)
	return d
}
