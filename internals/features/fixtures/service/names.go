package service

// Sinhala name pools; duplicate full names across students are expected.
var firstNames = []string{
	"Kasun", "Chamara", "Nuwan", "Dimuth", "Lahiru", "Sachith", "Buddhika",
	"Malsha", "Sanduni", "Dilini", "Hashini", "Sewwandi", "Chathurika", "Madhavi",
	"Kavinda", "Thisara", "Dasun", "Isuru", "Chanaka", "Thilina", "Ravindu",
	"Nethmi", "Sachini", "Hansini", "Dulani", "Amaya", "Sithmi", "Senuri",
}

var lastNames = []string{
	"Perera", "Silva", "Fernando", "Dissanayake", "Bandara", "Rajapaksa",
	"Wickramasinghe", "Gunasekara", "Jayawardena", "Ranasinghe", "Karunaratne",
	"Weerasinghe", "Mendis", "Samaraweera", "Gunawardana", "Senanayake",
	"Amarasekara", "Liyanage", "Rathnayake", "Nanayakkara",
}
