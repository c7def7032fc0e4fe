// Package xmlexport exporta la factura como documento XML con la estructura de UBL 2.1
// (cbc/cac), para importarla en sistemas contables.
package xmlexport

import (
	"context"
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/pkg/money"
	"github.com/jhoicas/Horas-api/pkg/timeutil"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// hourUnitCode código UN/ECE de la unidad "hora".
const hourUnitCode = "HUR"

// Renderer implementa billing.InvoiceRenderer con etree.
type Renderer struct{}

// NewRenderer construye el exportador XML.
func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) ContentType() string { return "application/xml" }

func (r *Renderer) Extension() string { return "xml" }

// Render serializa el snapshot de la factura. Los importes van sin separador de miles.
func (r *Renderer) Render(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("xmlexport: factura nil")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "ID", inv.Number)
	cbc(root, "UUID", inv.ID.String())
	cbc(root, "IssueDate", inv.CreatedAt.UTC().Format(timeutil.DateLayout))
	if inv.DueDate != nil {
		cbc(root, "DueDate", inv.DueDate.UTC().Format(timeutil.DateLayout))
	}
	if inv.Notes != "" {
		cbc(root, "Note", inv.Notes)
	}

	period := cac(root, "InvoicePeriod")
	cbc(period, "StartDate", inv.StartDate.UTC().Format(timeutil.DateLayout))
	cbc(period, "EndDate", inv.EndDate.UTC().Format(timeutil.DateLayout))

	if inv.Job.JobNumber != "" || inv.Job.Name != "" {
		order := cac(root, "OrderReference")
		cbc(order, "ID", nonEmpty(inv.Job.JobNumber, inv.Job.Name))
		if inv.Job.JobNumber != "" && inv.Job.Name != "" {
			cbc(order, "CustomerReference", inv.Job.Name)
		}
	}

	c := inv.Company
	supplier := party(cac(root, "AccountingSupplierParty"), c.Name, address{
		c.Address, c.City, c.State, c.PostalCode, c.Country,
	}, c.Email, c.Phone)
	if c.TaxID != "" {
		scheme := cac(supplier, "PartyTaxScheme")
		cbc(scheme, "CompanyID", c.TaxID)
	}

	cl := inv.Client
	customer := party(cac(root, "AccountingCustomerParty"), cl.Name, address{
		cl.Address, cl.City, cl.State, cl.PostalCode, cl.Country,
	}, cl.Email, cl.Phone)
	if inv.Job.ContactName != "" || inv.Job.ContactEmail != "" {
		contact := cac(customer, "Contact")
		optional(contact, "Name", inv.Job.ContactName)
		optional(contact, "ElectronicMail", inv.Job.ContactEmail)
	}

	if inv.IsPaid() && inv.PaidAt != nil {
		paid := cac(root, "PrepaidPayment")
		cbc(paid, "PaidAmount", amount(inv.TotalAmount))
		cbc(paid, "PaidDate", inv.PaidAt.UTC().Format(timeutil.DateLayout))
	}

	totals := cac(root, "LegalMonetaryTotal")
	cbc(totals, "LineExtensionAmount", amount(inv.TotalAmount))
	payable := inv.TotalAmount
	if inv.IsPaid() {
		payable = decimal.Zero
	}
	cbc(totals, "PayableAmount", amount(payable))

	for i, li := range inv.LineItems {
		line := cac(root, "InvoiceLine")
		cbc(line, "ID", fmt.Sprintf("%d", i+1))
		qty := cbc(line, "InvoicedQuantity", amount(li.Hours))
		qty.CreateAttr("unitCode", hourUnitCode)
		cbc(line, "LineExtensionAmount", amount(li.Amount))

		worked := cac(line, "InvoicePeriod")
		cbc(worked, "StartDate", li.Date.UTC().Format(timeutil.DateLayout))

		item := cac(line, "Item")
		optional(item, "Description", li.Description)
		ref := cac(item, "SellersItemIdentification")
		cbc(ref, "ID", li.EntryID.String())

		price := cac(line, "Price")
		cbc(price, "PriceAmount", amount(cl.HourlyRate))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return out, nil
}

type address struct {
	street, city, state, postal, country string
}

// party agrega cac:Party con nombre, dirección y contacto; omite lo vacío.
func party(parent *etree.Element, name string, a address, email, phone string) *etree.Element {
	p := cac(parent, "Party")
	cbc(cac(p, "PartyName"), "Name", name)

	if a != (address{}) {
		addr := cac(p, "PostalAddress")
		optional(addr, "StreetName", a.street)
		optional(addr, "CityName", a.city)
		optional(addr, "PostalZone", a.postal)
		optional(addr, "CountrySubentity", a.state)
		if a.country != "" {
			cbc(cac(addr, "Country"), "Name", a.country)
		}
	}
	if email != "" || phone != "" {
		contact := cac(p, "Contact")
		optional(contact, "Telephone", phone)
		optional(contact, "ElectronicMail", email)
	}
	return p
}

func cbc(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + tag)
	el.SetText(value)
	return el
}

func cac(parent *etree.Element, tag string) *etree.Element {
	return parent.CreateElement("cac:" + tag)
}

func optional(parent *etree.Element, tag, value string) {
	if value != "" {
		cbc(parent, tag, value)
	}
}

func amount(d decimal.Decimal) string {
	return money.Round2(d).StringFixed(money.Places)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
