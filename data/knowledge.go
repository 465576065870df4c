// Package data holds the static knowledge base the campus chatbot answers
// from. It is plain data: the matching logic lives in the chatbot service.
package data

type CannedSet struct {
	Patterns  []string
	Responses []string
}

type Subtopic struct {
	Keywords []string
	Response string
}

// Topic is one subject area. Subtopics are checked before the general
// answer, in order.
type Topic struct {
	Name      string
	Patterns  []string
	General   string
	Subtopics []Subtopic
}

type KnowledgeBase struct {
	Greetings CannedSet
	Thanks    CannedSet
	Goodbye   CannedSet
	Topics    []Topic
	Fallback  string
}

func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		Greetings: CannedSet{
			Patterns: []string{"hi", "hello", "hey", "greetings", "good morning", "good afternoon", "good evening"},
			Responses: []string{
				"Hello! I'm the college assistant. I can help with admissions, fees, exams, faculty, placements and facilities. What would you like to know?",
				"Hi there! Ask me about admissions, fees, exam schedules, faculty or placements.",
				"Hey! How can I help you with the college today?",
			},
		},
		Thanks: CannedSet{
			Patterns: []string{"thank", "thanks", "appreciate"},
			Responses: []string{
				"You're welcome! Anything else I can help with?",
				"Happy to help! Feel free to ask another question.",
			},
		},
		Goodbye: CannedSet{
			Patterns: []string{"bye", "goodbye", "see you", "farewell"},
			Responses: []string{
				"Goodbye! Come back any time you have a question.",
				"See you! Good luck with your studies.",
			},
		},
		Topics: []Topic{
			{
				Name: "admissions",
				Patterns: []string{
					"admission", "apply", "application", "enroll", "entrance",
					"registration", "eligibility", "requirements", "criteria",
				},
				General: "Admissions run from June 1st to July 15th. Register online, sit the entrance exam on July 25th (or submit JEE/NEET/CAT scores), then check the merit list published on August 5th. Merit is 60% entrance exam and 40% 12th-grade marks. Ask me about required documents or eligibility for details.",
				Subtopics: []Subtopic{
					{
						Keywords: []string{"document", "paper", "certificate"},
						Response: "For admission you need: 10th and 12th mark sheets and certificates, transfer certificate, identity proof (Aadhar), category certificate if applicable, six passport photos and a medical fitness certificate. Bring originals for verification.",
					},
					{
						Keywords: []string{"eligib", "qualif", "criteri"},
						Response: "Undergraduate programs require 12th grade with at least 60% in Physics, Chemistry and Mathematics. Postgraduate programs require a relevant bachelor's degree with 55% or above.",
					},
				},
			},
			{
				Name:     "fees",
				Patterns: []string{"fee", "fees", "cost", "payment", "tuition", "scholarship"},
				General:  "Tuition is ₹85,000 per year for B.Tech programs and ₹60,000 for M.Tech, payable per semester. Hostel and mess charges are separate. Fees can be paid online through the portal.",
				Subtopics: []Subtopic{
					{
						Keywords: []string{"scholar", "discount", "waiver"},
						Response: "Merit scholarships cover 25–100% of tuition for entrance-exam toppers. Government scholarships (SC/ST/OBC and income-based) are also accepted; apply with your income certificate during admission.",
					},
				},
			},
			{
				Name:     "exams",
				Patterns: []string{"exam", "test", "schedule", "timetable", "result", "grade", "cgpa", "marks"},
				General:  "Each semester has two mid exams (Mid-1 and Mid-2) and an end-semester exam. The timetable is posted on the notice board about three weeks before exams start.",
				Subtopics: []Subtopic{
					{
						Keywords: []string{"result", "grade", "cgpa", "marks"},
						Response: "Results are published on the portal within four weeks of the end-semester exams. Log in and open the Marks dashboard to see subject-wise marks and your CGPA.",
					},
				},
			},
			{
				Name:     "faculty",
				Patterns: []string{"faculty", "professor", "teacher", "staff", "hod"},
				General:  "Each department is led by a Head of Department with a mix of professors, associate and assistant professors. Most faculty hold PhDs and publish actively. Contact details are on the department pages.",
				Subtopics: []Subtopic{
					{
						Keywords: []string{"achieve", "award", "research", "publication"},
						Response: "Our faculty have published in IEEE and Springer journals, hold funded research projects and several have received state-level teaching awards.",
					},
				},
			},
			{
				Name:     "placements",
				Patterns: []string{"placement", "job", "recruit", "company", "salary", "package", "career"},
				General:  "Around 85% of eligible students are placed each year. Regular recruiters include TCS, Infosys, Wipro, Cognizant and Amazon; the average package is about ₹4.5 LPA and the highest recent offer was ₹24 LPA.",
				Subtopics: []Subtopic{
					{
						Keywords: []string{"train", "prepar", "skill", "course"},
						Response: "The placement cell runs aptitude, coding and soft-skills training from the third year, along with mock interviews and company-specific preparation sessions.",
					},
				},
			},
			{
				Name:     "facilities",
				Patterns: []string{"facility", "facilities", "hostel", "library", "lab", "sports", "canteen", "wifi", "bus", "transport"},
				General:  "The campus has separate hostels, a central library open till 10pm, computer and department labs, sports grounds, a gym, a canteen and campus-wide Wi-Fi. College buses cover the nearby towns.",
			},
			{
				Name:     "programs",
				Patterns: []string{"program", "course", "branch", "degree", "btech", "mtech", "department"},
				General:  "We offer B.Tech in CSE, ECE, EEE, Mechanical and Civil, plus M.Tech programs in selected specializations. The CSE department also runs CSM (AI & ML) and CSD (Data Science) branches.",
			},
			{
				Name:     "location",
				Patterns: []string{"location", "address", "where", "reach", "direction", "contact"},
				General:  "The campus is on the city bypass road, about 8 km from the railway station; college buses and city buses stop at the main gate. Reach the office at info@srit.ac.in.",
			},
		},
		Fallback: "I'm not sure about that. I can help with admissions, fees, exams, faculty, placements, facilities, programs and directions — try asking about one of those, or contact the college office at info@srit.ac.in.",
	}
}
