package config

// Project is one entry of the portfolio; each project gets one orb.
type Project struct {
	Name  string
	Tag   string
	Techs []string
	Link  string
}

// Projects is the fixed cast of the scene, in orb index order.
var Projects = []Project{
	{Name: "About Me", Tag: "Personal", Techs: []string{"C++", "Python", "JavaScript"}, Link: "https://www.linkedin.com/in/donnyvo/"},
	{Name: "TNO Internship", Tag: "Software Engineer Intern", Techs: []string{"C++", "Android Automotive", "CI/CD", "TomTom"}, Link: "https://www.tno.nl"},
	{Name: "Redox Flow Monitor", Tag: "Full-Stack / Data Engineering", Techs: []string{"Python", "FastAPI", "PostgreSQL", "InfluxDB", "Docker"}},
	{Name: "IP-CAR", Tag: "Embedded Systems", Techs: []string{"C++", "STM32", "Sensor Fusion", "ROS"}},
	{Name: "Education", Tag: "Rotterdam UAS · 2023–2027", Techs: []string{"Software Engineering", "Embedded Software", "Data Engineering"}, Link: "https://www.hogeschoolrotterdam.nl"},
	{Name: "Technical Skills", Tag: "Skills", Techs: []string{"C++", "Python", "Docker", "Linux", "PostgreSQL"}},
	{Name: "Soft Skills", Tag: "How I Work", Techs: []string{"Agile", "Scrum", "Cross-disciplinary"}},
}

// OrbOrigins are the world-space base positions, one per project.
var OrbOrigins = [][3]float64{
	{0.0, 5.0, -1.5}, // About Me, top centre
	{-8.5, 2.0, -1.5},
	{8.0, 2.8, 0.8},
	{-3.0, -4.0, 2.2},
	{4.8, -3.8, -0.8},
	{-7.8, -1.5, 3.0},
	{0.8, -1.0, -3.0},
}
