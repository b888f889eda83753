package seed

import "github.com/edupath/admissions/internal/app/models"

func website(url string) *string { return &url }

var defaultUniversities = []models.University{
	{Name: "University of Dhaka", Type: models.UniversityPublic, Location: "Dhaka", Description: "The oldest and most prestigious university in Bangladesh, offering a wide range of disciplines.", MinSSCGPA: 4.5, MinHSCGPA: 4.5, Website: website("https://www.du.ac.bd")},
	{Name: "BUET", Type: models.UniversityPublic, Location: "Dhaka", Description: "Bangladesh University of Engineering and Technology, the premier engineering institution.", MinSSCGPA: 5.0, MinHSCGPA: 5.0, Website: website("https://www.buet.ac.bd")},
	{Name: "Jahangirnagar University", Type: models.UniversityPublic, Location: "Savar", Description: "A fully residential public university known for its scenic campus and research.", MinSSCGPA: 4.0, MinHSCGPA: 4.0, Website: website("https://www.juniv.edu")},
	{Name: "University of Rajshahi", Type: models.UniversityPublic, Location: "Rajshahi", Description: "One of the largest and oldest universities in the country with a rich academic history.", MinSSCGPA: 4.0, MinHSCGPA: 4.0, Website: website("https://www.ru.ac.bd")},
	{Name: "University of Chittagong", Type: models.UniversityPublic, Location: "Chittagong", Description: "A major public research university located in the hills of Chittagong.", MinSSCGPA: 4.0, MinHSCGPA: 4.0, Website: website("https://www.cu.ac.bd")},
	{Name: "SUST", Type: models.UniversityPublic, Location: "Sylhet", Description: "Shahjalal University of Science and Technology, a leader in science and tech education.", MinSSCGPA: 4.5, MinHSCGPA: 4.5, Website: website("https://www.sust.edu")},
	{Name: "Khulna University", Type: models.UniversityPublic, Location: "Khulna", Description: "A top-tier public university known for its academic excellence and discipline.", MinSSCGPA: 4.0, MinHSCGPA: 4.0, Website: website("https://ku.ac.bd")},
	{Name: "Jagannath University", Type: models.UniversityPublic, Location: "Dhaka", Description: "A prominent public university located in the heart of Old Dhaka.", MinSSCGPA: 4.0, MinHSCGPA: 4.0, Website: website("https://jnu.ac.bd")},
	{Name: "Bangladesh Agricultural University", Type: models.UniversityPublic, Location: "Mymensingh", Description: "The premier institution for agricultural education and research.", MinSSCGPA: 4.0, MinHSCGPA: 4.0, Website: website("https://www.bau.edu.bd")},

	{Name: "North South University", Type: models.UniversityPrivate, Location: "Dhaka", Description: "The first private university in Bangladesh, known for its business and engineering programs.", MinSSCGPA: 3.5, MinHSCGPA: 3.5, Website: website("https://www.northsouth.edu")},
	{Name: "BRAC University", Type: models.UniversityPrivate, Location: "Dhaka", Description: "A leading private university focused on liberal arts and social impact.", MinSSCGPA: 3.5, MinHSCGPA: 3.5, Website: website("https://www.bracu.ac.bd")},
	{Name: "AIUB", Type: models.UniversityPrivate, Location: "Dhaka", Description: "American International University-Bangladesh, excellence in engineering and technology.", MinSSCGPA: 3.0, MinHSCGPA: 3.0, Website: website("https://www.aiub.edu")},
	{Name: "East West University", Type: models.UniversityPrivate, Location: "Dhaka", Description: "A top-ranked private university with strong business and science faculties.", MinSSCGPA: 3.0, MinHSCGPA: 3.0, Website: website("https://www.ewubd.edu")},
	{Name: "Independent University, Bangladesh", Type: models.UniversityPrivate, Location: "Dhaka", Description: "Known for its modern campus and diverse range of undergraduate programs.", MinSSCGPA: 3.0, MinHSCGPA: 3.0, Website: website("https://www.iub.edu.bd")},
	{Name: "United International University", Type: models.UniversityPrivate, Location: "Dhaka", Description: "A rapidly growing private university with a focus on research and innovation.", MinSSCGPA: 3.0, MinHSCGPA: 3.0, Website: website("https://www.uiu.ac.bd")},
	{Name: "AUST", Type: models.UniversityPrivate, Location: "Dhaka", Description: "Ahsanullah University of Science and Technology, highly regarded for engineering.", MinSSCGPA: 4.0, MinHSCGPA: 4.0, Website: website("https://www.aust.edu")},
	{Name: "Daffodil International University", Type: models.UniversityPrivate, Location: "Dhaka", Description: "A leading private university with a strong focus on ICT and entrepreneurship.", MinSSCGPA: 2.5, MinHSCGPA: 2.5, Website: website("https://daffodilvarsity.edu.bd")},
}

// defaultScholarship names its university instead of an ID so seeding does not
// depend on insertion order
type defaultScholarship struct {
	Name        string
	University  string
	Amount      string
	Deadline    string
	Description string
}

var defaultScholarships = []defaultScholarship{
	{"NSU Merit Scholarship", "North South University", "100% Tuition Waiver", "2025-06-30", "Awarded to top performers in the admission test. Requires maintaining a minimum CGPA of 3.5 throughout the program."},
	{"BRACU Need-based Aid", "BRAC University", "Up to 100% Waiver", "2025-07-15", "Financial assistance for students with demonstrated financial need. Requires submission of income tax returns and other financial documents."},
	{"AIUB Academic Excellence", "AIUB", "50% Tuition Waiver", "2025-08-01", "For students maintaining a CGPA of 3.8 or above. Applicable for the subsequent semester."},
	{"DU Merit Grant", "University of Dhaka", "Monthly Stipend", "2025-05-20", "Awarded to the top 10 students in each faculty based on admission test results."},
	{"BUET Research Fellowship", "BUET", "Full Funding", "2025-09-15", "For undergraduate students participating in faculty-led research projects in engineering."},
	{"EWU Medha Lalon", "East West University", "100% Waiver", "2025-06-15", "Merit-based scholarship for students with GPA 5.0 in both SSC and HSC."},
	{"IUB Financial Grant", "Independent University, Bangladesh", "25-50% Waiver", "2025-07-20", "Need-based grant for students from low-income families or remote areas."},
	{"UIU Innovation Award", "United International University", "Fixed Grant", "2025-10-10", "Awarded to students who demonstrate exceptional projects in the UIU Innovation Lab."},
}
