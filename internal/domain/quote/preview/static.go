package preview

const (
	Brand       = "COLCAL MACHINERY"
	Tagline     = "Powering Homes, Businesses & Industries Across East Africa"
	Title       = "QUOTATION"
	Currency    = "KES"
	CompanyMail = "sales@colcalmachinery.co.ke"
	CompanyTel  = "0701 652100"
	CompanyWeb  = "www.colcalmachinery.co.ke"
	CompanyAddr = "Barkat Biashara Mall, Kumasi Road, Opp SBM Bank, Nairobi, Kenya"
)

var contact = []Field{
	{Label: "Email", Value: CompanyMail},
	{Label: "Phone", Value: CompanyTel},
	{Label: "Website", Value: CompanyWeb},
	{Label: "Address", Value: CompanyAddr},
}

var valueProposition = Section{
	Heading: "Why Choose Colcal Machinery?",
	Body: "Colcal Machinery specializes in reliable power and machinery solutions " +
		"across Kenya and East Africa. We offer complete installation, testing, " +
		"and commissioning services handled by certified technicians. Every " +
		"project is delivered on time, professionally executed, and backed by " +
		"after-sales support.",
	Points: []string{
		"Trusted brands like Perkins, Cummins, Jinko, SRNE, and Premier",
		"Expert installation and training",
		"5-year warranty on solar systems",
		"24/7 technical support and spare parts availability",
	},
}

var payment = Payment{
	Heading: "Payment Details",
	MobileMoney: Group{
		Heading: "LIPA NA MPESA",
		Fields: []Field{
			{Label: "Business Number", Value: "400200"},
			{Label: "Account Number", Value: "889545"},
		},
	},
	Bank: Group{
		Heading: "BANKING DETAILS",
		Fields: []Field{
			{Label: "Bank Name", Value: "CO-OPERATIVE BANK OF KENYA"},
			{Label: "Account Name", Value: "COLCAL MACHINERY AND EQUIPMENT COMPANY"},
			{Label: "Account Number", Value: "01101384733002"},
			{Label: "SWIFT Code", Value: "KCOOKENA"},
			{Label: "Bank Code", Value: "11000"},
			{Label: "Branch Code", Value: "11135 (Tom Mboya Branch)"},
		},
	},
}

var footer = []string{
	"For reliable solar, generator, and machinery solutions — trust Colcal machinery",
	"Delivering power across Kenya & East Africa",
	CompanyWeb + " | " + CompanyMail + " | Tel: " + CompanyTel,
}

var columns = []string{"#", "Product", "Description", "Qty", "Unit Price (KES)", "Total (KES)"}
