package person

// Curated word tables for demographic generation. Kept literal so the
// generated population is inspectable and stable across releases.

var maleGivenNames = []string{
	"James", "Michael", "Robert", "John", "David", "William", "Richard",
	"Joseph", "Thomas", "Christopher", "Charles", "Daniel", "Matthew",
	"Anthony", "Mark", "Donald", "Steven", "Andrew", "Paul", "Joshua",
	"Kenneth", "Kevin", "Brian", "Timothy", "Ronald", "Jason", "George",
	"Edward", "Jeffrey", "Ryan", "Jacob", "Nicholas", "Gary", "Eric",
	"Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
}

var femaleGivenNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara",
	"Susan", "Jessica", "Karen", "Sarah", "Lisa", "Nancy", "Sandra",
	"Betty", "Ashley", "Emily", "Kimberly", "Margaret", "Donna", "Michelle",
	"Carol", "Amanda", "Melissa", "Deborah", "Stephanie", "Rebecca",
	"Sharon", "Laura", "Cynthia", "Dorothy", "Amy", "Kathleen", "Angela",
	"Shirley", "Emma", "Brenda", "Pamela", "Nicole", "Anna", "Samantha",
}

var familyNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

var streetNames = []string{
	"Main", "Oak", "Maple", "Cedar", "Elm", "Washington", "Lake", "Hill",
	"Park", "Pine", "Walnut", "Spring", "River", "Church", "Highland",
	"Sunset", "Willow", "Chestnut", "Meadow", "Forest",
}

var streetSuffixes = []string{"St", "Ave", "Rd", "Blvd", "Ln", "Dr", "Ct", "Way"}

var cities = []string{
	"Springfield", "Franklin", "Clinton", "Greenville", "Bristol",
	"Fairview", "Salem", "Madison", "Georgetown", "Arlington", "Ashland",
	"Burlington", "Manchester", "Milton", "Newport", "Oxford", "Riverside",
	"Cleveland", "Dayton", "Lexington",
}

var states = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID",
	"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS",
	"MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK",
	"OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV",
	"WI", "WY",
}

var emailDomains = []string{
	"example.com", "example.org", "example.net", "mail.example.com",
}
