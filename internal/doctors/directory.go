package doctors

// Specialization tags a doctor record with one of ten fixed categories.
type Specialization string

const (
	GeneralPhysician  Specialization = "General Physician"
	Dermatologist     Specialization = "Dermatologist"
	Pediatrician      Specialization = "Pediatrician"
	OrthopedicSurgeon Specialization = "Orthopedic Surgeon"
	Gynecologist      Specialization = "Gynecologist"
	ENTSpecialist     Specialization = "ENT Specialist"
	Psychiatrist      Specialization = "Psychiatrist"
	Cardiologist      Specialization = "Cardiologist"
	Dentist           Specialization = "Dentist"
)

// Doctor is one row of the directory.
type Doctor struct {
	Name           string         `json:"name"`
	Specialization Specialization `json:"specialization"`
	Fee            int            `json:"fees"`
	Location       string         `json:"location"`
}

var directory = []Doctor{
	{Name: "Dr. Rajesh Sharma", Specialization: GeneralPhysician, Fee: 200, Location: "Mumbai"},
	{Name: "Dr. Priya Singh", Specialization: Dermatologist, Fee: 300, Location: "Mumbai"},
	{Name: "Dr. Anil Kumar", Specialization: Pediatrician, Fee: 250, Location: "Mumbai"},
	{Name: "Dr. Meera Patel", Specialization: GeneralPhysician, Fee: 150, Location: "Mumbai"},
	{Name: "Dr. Vikram Gupta", Specialization: OrthopedicSurgeon, Fee: 400, Location: "Mumbai"},
	{Name: "Dr. Sunita Desai", Specialization: Gynecologist, Fee: 350, Location: "Mumbai"},
	{Name: "Dr. Ramesh Joshi", Specialization: ENTSpecialist, Fee: 300, Location: "Mumbai"},
	{Name: "Dr. Neha Kapoor", Specialization: Psychiatrist, Fee: 500, Location: "Mumbai"},
	{Name: "Dr. Arjun Reddy", Specialization: Cardiologist, Fee: 600, Location: "Mumbai"},
	{Name: "Dr. Kavita Rao", Specialization: Dentist, Fee: 200, Location: "Mumbai"},
}

// Directory returns a copy of the built-in doctor table.
func Directory() []Doctor {
	out := make([]Doctor, len(directory))
	copy(out, directory)
	return out
}
