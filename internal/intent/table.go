package intent

import (
	"fmt"
	"strings"

	"peacey/internal/catalog"
)

// PackageNotFound is returned by the price lookup rule when the named package is not in
// the catalog.
const PackageNotFound = "Sorry, I couldn't find that package. Please ask about Package A to J."

// DefaultTable builds the production rule table for the given catalog.
// Rules are grouped by topic; within the table order decides which rule answers.
func DefaultTable(cat *catalog.Catalog, assistantName string) *Table {
	if cat == nil {
		cat = catalog.Default()
	}
	if assistantName == "" {
		assistantName = "Peacey"
	}

	var rules []Rule
	add := func(name, expr string, resp Responder) {
		rules = append(rules, Rule{Name: name, Pattern: Pattern(expr), Responder: resp})
	}

	// packages and pricing
	add("packages.count",
		`how many (funeral )?packages (do you have|are there)|number of packages|funeral packages`,
		Fixed(fmt.Sprintf("We offer %d packages:\n", len(cat.Packages))+
			packageList(cat)+
			"\nYou can choose any package and customize it with your preferred theme."))
	add("packages.list",
		`what (are|is|do you offer) (the )?packages|list.*packages|can you list.*packages`,
		Fixed(fmt.Sprintf("Here are our %d standard packages:\n", len(cat.Packages))+
			packageList(cat)+
			"\nEvery package includes core funeral services and can be further customized."))
	add("packages.price_of",
		`(price|cost) of (package [a-z])\b`,
		Templated(func(m Match) string {
			p, ok := cat.Find(m.Group(2))
			if !ok {
				return PackageNotFound
			}
			return fmt.Sprintf("%s costs %s. You can customize this with any of our %d available themes. Would you like to know what's included?",
				p.Name, cat.Price(p), len(cat.Themes))
		}))
	add("packages.price_range",
		`how much.*(package|cost|price)|price.*package|package.*price|cost.*funeral`,
		Fixed(priceRange(cat)))
	add("packages.cheapest",
		`cheapest|lowest price|most affordable|budget|minimum cost`,
		Fixed(cheapest(cat)))
	add("packages.premium",
		`most expensive|highest price|premium|luxury|top package`,
		Fixed(premium(cat)))
	add("packages.payment_plans",
		`payment.*plan|installment|pay.*monthly|financing`,
		Fixed("Yes, we offer flexible payment plans and installment options to make our services more accessible. Contact our support team to discuss payment arrangements that work for your family."))
	add("packages.inclusions",
		`what.*included.*package|package.*include|what.*get.*package`,
		Fixed("Each package includes: casket/urn, embalming, viewing arrangements, transportation, funeral service coordination, and documentation assistance. Higher packages include additional amenities and premium options."))

	// themes and customization
	add("themes.list",
		`what (are )?(the )?(themes|styles|motifs)|theme.*package|can i customize.*theme`,
		Fixed(fmt.Sprintf("You can choose from %d beautiful themes for any package:\n", len(cat.Themes))+
			themeList(cat)+
			"\nYour chosen theme will be reflected in the decor and generated images."))
	add("themes.customize",
		`customize|personalize|modify|change.*package`,
		Fixed("Yes! All packages can be customized with your preferred theme, additional flowers, music, special arrangements, or personal touches. We'll work with you to honor your loved one's memory."))
	add("themes.flowers",
		`flowers|arrangements|decorations|decor`,
		Fixed("We provide beautiful floral arrangements matching your chosen theme. You can also request specific flowers, colors, or custom arrangements for an additional fee."))

	// service types
	add("services.types",
		`what (types|kind|kinds|forms) of (funeral|service|ceremony)`,
		Fixed("We offer traditional funerals, cremation services, memorials, celebration of life ceremonies, wake services. Each can be paired with any package and theme."))
	add("services.traditional",
		`traditional.*funeral|catholic.*funeral|christian.*funeral`,
		Fixed("We provide traditional religious funeral services following Catholic, Protestant, and other Christian traditions. This includes wake services, funeral mass coordination, and burial arrangements."))
	add("services.celebration_of_life",
		`celebration.*life|memorial.*service|remembrance.*service`,
		Fixed("Our celebration of life services focus on honoring your loved one's life and legacy. These can be more personalized and less formal than traditional funerals, featuring photos, videos, and shared memories."))
	add("services.wake",
		`wake.*service|viewing|visitation`,
		Fixed("We provide wake services with comfortable viewing areas, seating for family and friends, and all necessary arrangements. Duration can be customized based on your family's needs."))

	// cremation and burial
	add("disposition.options",
		`cremat|burial|urn|ashes`,
		Fixed("We provide both cremation and burial options. Cremation packages start at ₱40,000, and burial packages start at ₱50,000. Any package can be customized for either option."))
	add("disposition.cremation_process",
		`cremation.*process|how.*cremation|cremation.*work`,
		Fixed("Our cremation process is respectful and dignified. We handle all documentation, provide temporary and permanent urns, and can arrange for ash scattering or interment according to your wishes."))
	add("disposition.burial_process",
		`burial.*process|how.*burial|cemetery|grave`,
		Fixed("We coordinate burial services including casket selection, cemetery arrangements, grave preparation, and graveside services. We work with various cemeteries and can help you choose the right location."))
	add("disposition.caskets",
		`casket|coffin|urn.*options`,
		Fixed("We offer a wide selection of caskets and urns in different materials, styles, and price ranges. From simple wooden caskets to premium metal options, and from basic urns to decorative memorial urns."))

	// documentation and legal
	add("documents.certificates",
		`death certificate|documents|paperwork|legal`,
		Fixed("We assist with all necessary documentation including death certificates, burial permits, insurance claims, and government requirements. Our team handles the paperwork so you can focus on your family."))
	add("documents.insurance",
		`insurance|claim|benefits`,
		Fixed("We help process insurance claims and government benefits including SSS, GSIS, and other death benefits. Our team will guide you through the application process."))
	add("documents.permits",
		`permit|requirements|government|city hall`,
		Fixed("We handle all required permits and government requirements including burial permits, transport permits, and local government documentation. Everything is taken care of for you."))

	// transportation and logistics
	add("logistics.transport",
		`transport|vehicle|hearse|pickup`,
		Fixed("We provide professional transportation services including hearse, family cars, and pickup services. Transportation is included in all packages, with premium vehicles available in higher packages."))
	add("logistics.venue",
		`location|venue|where.*service|funeral home`,
		Fixed("Services can be held at our funeral homes, churches, family residences, or other venues of your choice. We have multiple locations and can coordinate services anywhere in Metro Manila."))
	add("logistics.body_transfer",
		`pickup.*body|transfer.*deceased|bring.*home`,
		Fixed("We provide pickup services from hospitals, homes, or other locations. Our professional staff handles the transfer with dignity and respect, following all health and safety protocols."))

	// timeline and scheduling
	add("schedule.duration",
		`how long|duration|days.*funeral|schedule`,
		Fixed("Funeral services typically last 3-7 days depending on your preferences. This includes wake/viewing (1-3 days), funeral service (1 day), and burial/cremation. We can adjust the timeline to meet your family's needs."))
	add("schedule.availability",
		`when.*available|schedule.*funeral|book.*date`,
		Fixed("We're available for funeral arrangements. Most services can be scheduled within 24-48 hours. We'll work with your preferred dates and coordinate with churches, cemeteries, and other venues."))
	add("schedule.emergency",
		`emergency|urgent|immediate|rush`,
		Fixed("We provide emergency services for immediate needs. Call our hotline anytime, and we'll respond quickly to assist with urgent arrangements and provide immediate support."))

	// pre-planning
	add("preplanning.advance",
		`pre-?plan.*funeral|plan.*in advance|advance (planning|arrangement)`,
		Fixed("Yes, we offer pre-planning so you can make arrangements in advance, ensuring your wishes are honored and easing the burden on your family. Pre-planning also locks in today's prices."))
	add("preplanning.preneed",
		`pre.*need|plan.*ahead|future.*planning`,
		Fixed("Pre-need planning allows you to make all funeral arrangements in advance and pay over time. This ensures your family won't have to make difficult decisions during their time of grief while also providing financial protection."))

	// grief support
	add("grief.support",
		`grief support|support.*grieving|help.*grief|bereavement`,
		Fixed("We offer grief support, including resources and connections to professional counselors or support groups. We understand that healing takes time, and we're here to support you beyond the funeral service."))
	add("grief.counseling",
		`counseling|therapy|emotional support|coping`,
		Fixed("We can connect you with professional grief counselors and support groups. Many families find comfort in speaking with others who have experienced similar losses."))

	// digital and memorial services
	add("memorial.digital",
		`memorial|tribute|remember|digital memorial`,
		Fixed("You can create digital memorials and tributes in the EternalpEASE app, choosing any of our themes for a personalized experience. We also offer online streaming for distant family and friends."))
	add("memorial.livestream",
		`live stream|online.*service|virtual.*funeral|video`,
		Fixed("We offer live streaming services so family and friends who cannot attend in person can participate in the service online. This includes setup of cameras, audio, and streaming platforms."))
	add("memorial.slideshow",
		`photos|video.*tribute|slideshow|memory.*board`,
		Fixed("We can create photo slideshows, video tributes, and memory boards celebrating your loved one's life. These can be displayed during the service and shared with family and friends."))

	// special services
	add("special.military",
		`military.*funeral|veteran|honor guard`,
		Fixed("We provide military funeral honors for veterans including flag presentation, honor guard, and coordination with military representatives. We ensure your veteran receives the respect they deserve."))
	add("special.child",
		`child.*funeral|infant|baby|pediatric`,
		Fixed("We provide compassionate care for infant and child services with special packages designed for families during this difficult time. Our staff is specially trained to provide gentle, sensitive support."))
	add("special.eco",
		`eco.*friendly|green.*burial|natural.*burial|environmental`,
		Fixed("We offer eco-friendly options including biodegradable caskets, natural burial sites, and environmentally conscious practices. These options honor both your loved one and the environment."))

	// contact and support
	add("contact.support",
		`contact.*support|how.*contact|reach.*support|customer service`,
		Fixed("You can contact our support team via the app or by emailing support@eternalpease.com."))
	add("misc.sleep_early",
		`sino.*matulog|sino.*maaga|matulog.*maaga|customer service`,
		Fixed("Si Angel Lauren Sanchez"))
	add("misc.sleep_tips",
		`tips.*para|makatulog.*maaga|tips.*para|customer service`,
		Fixed("MAG DROP KA NA"))
	add("contact.hotline",
		`emergency.*contact|hotline|urgent.*help`,
		Fixed("Our emergency hotline is 0917-PEACEY1 (0917-732-2391. We're available for urgent needs and emergency funeral arrangements."))
	add("contact.hours",
		`office.*hours|when.*open|business hours`,
		Fixed("Our funeral homes are open for your convenience. Our administrative offices are open Monday-Saturday 8AM-6PM, and our emergency services are available when needed."))

	// arrangements and booking
	add("booking.arrange",
		`how (do|can) i arrange.*funeral|arrange.*funeral|book.*funeral`,
		Fixed("To arrange a funeral, simply choose your preferred package and theme in the EternalpEASE app or contact our support team. We'll guide you every step of the way and handle all the details."))
	add("booking.first_steps",
		`what.*do.*first|where.*start|begin.*process`,
		Fixed("Start by contacting us immediately. We'll guide you through: 1) Immediate needs (body pickup/transfer), 2) Package selection, 3) Documentation assistance, 4) Service planning, and 5) Final arrangements."))
	add("booking.checklist",
		`checklist|what.*need|requirements.*family`,
		Fixed("We'll help you gather: valid IDs, medical certificate of death, marriage certificate (if applicable), birth certificate, and any insurance documents. Don't worry - we'll guide you through everything you need."))

	// facilities and amenities
	add("facilities.chapels",
		`facilities|amenities|chapel|rooms`,
		Fixed("Our facilities include climate-controlled chapels, comfortable family rooms, parking areas, catering facilities, and audio-visual equipment. Each location is designed to provide comfort during difficult times."))
	add("facilities.accessibility",
		`parking|accessibility|wheelchair|facilities`,
		Fixed("All our locations offer ample parking and are wheelchair accessible. We have ramps, accessible restrooms, and reserved parking for elderly and disabled guests."))
	add("facilities.catering",
		`catering|food|refreshments|meals`,
		Fixed("We can arrange catering services for family and guests, from simple refreshments to full meals. We work with trusted caterers who understand the needs of funeral gatherings."))

	// religious and cultural
	add("culture.islamic",
		`muslim.*funeral|islamic.*service|halal`,
		Fixed("We provide Islamic funeral services following Muslim traditions including proper preparation, quick burial arrangements, and coordination with Islamic centers and imams."))
	add("culture.buddhist",
		`buddhist.*funeral|buddhist.*service`,
		Fixed("We offer Buddhist funeral services with proper ceremonies, incense arrangements, and coordination with Buddhist temples and monks according to Buddhist traditions."))
	add("culture.chinese",
		`chinese.*funeral|chinese.*tradition|feng shui`,
		Fixed("We provide traditional Chinese funeral services including proper arrangements according to Chinese customs, coordination with Taoist or Buddhist elements, and feng shui considerations."))

	// general
	add("general.funeral",
		`funeral`,
		Fixed("EternalpEASE helps make funeral and memorial arrangements gentle and respectful. Ask about our packages, prices, themes, or any step of the process. I'm here to help with any questions you have."))
	add("general.greeting",
		`hello|hi|hey|good morning|good afternoon|good evening`,
		Fixed(fmt.Sprintf("Hello! 👋 I'm %s, your compassionate funeral service assistant. How can I help you today? You can ask me about packages, services, or any funeral-related questions.", assistantName)))
	add("general.help",
		`help|support|assist`,
		Fixed("I'm here to help! You can ask me about:\n• Funeral packages and pricing\n• Service types and themes\n• Documentation assistance\n• Scheduling and arrangements\n• Grief support resources\n• Any other funeral-related questions"))
	add("general.thanks",
		`thank you|thanks`,
		Fixed("You're very welcome. I'm here whenever you need assistance or have questions. Take care, and please don't hesitate to reach out anytime. 🙏"))

	fallbacks := []Rule{
		{
			Name:      "account.forgot_password",
			Pattern:   Pattern(`forgot.*password`),
			Responder: Fixed("If you forgot your password, tap 'Forgot Password?' on the login screen to reset it."),
		},
	}

	return NewTable(rules, fallbacks, DefaultFallback)
}

func packageList(cat *catalog.Catalog) string {
	lines := make([]string, 0, len(cat.Packages))
	for _, p := range cat.Packages {
		lines = append(lines, fmt.Sprintf("- %s (%s)", p.Name, cat.Price(p)))
	}
	return strings.Join(lines, "\n")
}

func themeList(cat *catalog.Catalog) string {
	lines := make([]string, 0, len(cat.Themes))
	for i, t := range cat.Themes {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, t))
	}
	return strings.Join(lines, "\n")
}

func priceRange(cat *catalog.Catalog) string {
	lo, ok := cat.Cheapest()
	hi, _ := cat.MostExpensive()
	if !ok {
		return "Let me know which package you are interested in and I'll share its price."
	}
	return fmt.Sprintf("Our packages range from %s (%s) to %s (%s). Most families choose packages in the ₱50,000 to ₱100,000 range. Let me know if you want the price for a specific package.",
		cat.Price(lo), lo.Name, cat.Price(hi), hi.Name)
}

func cheapest(cat *catalog.Catalog) string {
	p, ok := cat.Cheapest()
	if !ok {
		return PackageNotFound
	}
	return fmt.Sprintf("Our most affordable package is %s at %s, which includes all essential funeral services. Would you like to know what's included in this package?",
		p.Name, cat.Price(p))
}

func premium(cat *catalog.Catalog) string {
	p, ok := cat.MostExpensive()
	if !ok {
		return PackageNotFound
	}
	return fmt.Sprintf("Our premium package is %s at %s, which includes our most comprehensive services and premium amenities. Would you like details about this package?",
		p.Name, cat.Price(p))
}
