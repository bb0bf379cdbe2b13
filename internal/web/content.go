package web

// Benefit is a card in the "why sell to us" section.
type Benefit struct {
	Title       string
	Description string
}

// Step is one stage of the selling process.
type Step struct {
	Title       string
	Description string
}

// Testimonial is a seller quote.
type Testimonial struct {
	Name     string
	Location string
	Text     string
}

// FAQ is a question/answer pair.
type FAQ struct {
	Question string
	Answer   string
}

var heroPoints = []string{
	"Cash offer in 24 hours or less",
	"We buy in any condition",
	"No fees or commissions",
	"Close on your timeline",
}

var benefits = []Benefit{
	{"No Clean Up or Fix Up Needed", "We buy houses in every condition. Leave the repairs, the junk and the cleaning to us."},
	{"No Real Estate Agents", "You deal with us directly. No listing, no showings, no commissions taken out of your sale."},
	{"Lightning-Fast Transactions", "We can close as soon as you are ready, often within 7 to 10 days of accepting the offer."},
	{"You Choose the Timeline", "Close in 10 days or 60 days. The closing date is yours to pick."},
}

var steps = []Step{
	{"Submit Your Address", "Tell us where the property is. It takes less than a minute."},
	{"Receive An Offer In 24 Hours", "We present a no-obligation cash offer and you pick the close date."},
	{"Get Ready To Close", "We handle the paperwork and closing costs. You get paid at closing."},
}

var testimonials = []Testimonial{
	{"Sarah Johnson", "Phoenix, AZ", "I inherited a house that needed more work than I could handle. The offer came the next day and closing was painless."},
	{"Mike Rodriguez", "Austin, TX", "We needed to sell quickly during a divorce. They were professional, fair, and closed exactly when we needed."},
	{"Jennifer Chen", "Denver, CO", "Our house had water damage and we could not afford the repairs. They bought it as-is."},
	{"Robert Williams", "Orlando, FL", "I had to relocate for work on short notice. They handled everything and we closed in 12 days."},
	{"Lisa Thompson", "Seattle, WA", "My rental was more trouble than it was worth. They still made a fair offer and I am relieved to be done with it."},
}

var faqs = []FAQ{
	{"How quickly can you buy my house?", "We usually make a cash offer within 24 hours. Once you accept, we can close in as little as 7 to 10 days, or up to 60 days if you need more time."},
	{"Do I need to make any repairs before selling?", "No. We buy houses in any condition, from move-in ready to major foundation, roof or water damage."},
	{"Are there any fees or commissions?", "No. There are no commissions or listing fees, and we pay the closing costs. The offer is what you receive."},
	{"How do you determine your offer price?", "We look at current market value, condition, location and recent comparable sales in your area."},
	{"What types of properties do you buy?", "Single-family homes, condos, townhouses, multi-family properties, mobile homes and land."},
	{"Is there any obligation after I receive an offer?", "None. The offer is free. Take your time, compare it, or simply say no."},
	{"Do you buy houses that are in foreclosure?", "Yes. We can often close fast enough to stop the foreclosure process. Contact us as early as possible."},
	{"What if my house has tenants?", "We buy rentals with tenants in place and can honour existing leases or help with relocation."},
	{"How is this different from listing with an agent?", "Listing means commissions (typically 6%), repairs, staging, showings and months of waiting. We offer a direct sale with a guaranteed close date."},
}
