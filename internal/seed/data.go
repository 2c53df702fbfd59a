package seed

import "github.com/mergington/activities/internal/models"

type teacherSeed struct {
	Username    string
	DisplayName string
	Password    string
	Role        models.TeacherRole
}

func activity(name, description, schedule string, days []string, start, end string, max int, participants ...string) models.Activity {
	return models.Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		ScheduleDays:    days,
		StartTime:       start,
		EndTime:         end,
		MaxParticipants: max,
		Participants:    participants,
	}
}

// Activities is the initial Mergington High catalog.
var Activities = []models.Activity{
	activity("Chess Club", "Learn strategies and compete in chess tournaments",
		"Mondays and Fridays, 3:15 PM - 4:45 PM", []string{"Monday", "Friday"}, "15:15", "16:45", 12,
		"michael@mergington.edu", "daniel@mergington.edu"),
	activity("Programming Class", "Learn programming fundamentals and build software projects",
		"Tuesdays and Thursdays, 7:00 AM - 8:00 AM", []string{"Tuesday", "Thursday"}, "07:00", "08:00", 20,
		"emma@mergington.edu", "sophia@mergington.edu"),
	activity("Morning Fitness", "Early morning physical training and exercises",
		"Mondays, Wednesdays, Fridays, 6:30 AM - 7:45 AM", []string{"Monday", "Wednesday", "Friday"}, "06:30", "07:45", 30,
		"john@mergington.edu", "olivia@mergington.edu"),
	activity("Soccer Team", "Join the school soccer team and compete in matches",
		"Tuesdays and Thursdays, 3:30 PM - 5:30 PM", []string{"Tuesday", "Thursday"}, "15:30", "17:30", 22,
		"liam@mergington.edu", "noah@mergington.edu"),
	activity("Basketball Team", "Practice and compete in basketball tournaments",
		"Wednesdays and Fridays, 3:15 PM - 5:00 PM", []string{"Wednesday", "Friday"}, "15:15", "17:00", 15,
		"ava@mergington.edu", "mia@mergington.edu"),
	activity("Art Club", "Explore various art techniques and create masterpieces",
		"Thursdays, 3:15 PM - 5:00 PM", []string{"Thursday"}, "15:15", "17:00", 15,
		"amelia@mergington.edu", "harper@mergington.edu"),
	activity("Drama Club", "Act, direct, and produce plays and performances",
		"Mondays and Wednesdays, 3:30 PM - 5:30 PM", []string{"Monday", "Wednesday"}, "15:30", "17:30", 20,
		"ella@mergington.edu", "scarlett@mergington.edu"),
	activity("Math Club", "Solve challenging problems and prepare for math competitions",
		"Tuesdays, 7:15 AM - 8:00 AM", []string{"Tuesday"}, "07:15", "08:00", 10,
		"james@mergington.edu", "benjamin@mergington.edu"),
	activity("Debate Team", "Develop public speaking and argumentation skills",
		"Fridays, 3:30 PM - 5:30 PM", []string{"Friday"}, "15:30", "17:30", 12,
		"charlotte@mergington.edu", "amelia@mergington.edu"),
	activity("Weekend Robotics Workshop", "Build and program robots in our state-of-the-art workshop",
		"Saturdays, 10:00 AM - 2:00 PM", []string{"Saturday"}, "10:00", "14:00", 15,
		"ethan@mergington.edu", "oliver@mergington.edu"),
	activity("Science Olympiad", "Weekend science competition preparation for regional and state events",
		"Saturdays, 1:00 PM - 4:00 PM", []string{"Saturday"}, "13:00", "16:00", 18,
		"isabella@mergington.edu", "lucas@mergington.edu"),
	activity("Sunday Chess Tournament", "Weekly tournament for serious chess players with rankings",
		"Sundays, 2:00 PM - 5:00 PM", []string{"Sunday"}, "14:00", "17:00", 16,
		"william@mergington.edu", "jacob@mergington.edu"),
	activity("Manga Maniacs", "Dive into the incredible worlds of Japanese manga! From epic shonen adventures to heartwarming slice-of-life stories, discover amazing characters, stunning artwork, and mind-blowing plot twists. Share your favorite series, debate the best anime adaptations, and find your next obsession with fellow otaku!",
		"Tuesdays, 7:00 PM - 8:30 PM", []string{"Tuesday"}, "19:00", "20:30", 15),
}

// teachers are the initial staff accounts. Passwords are hashed on insert.
var teachers = []teacherSeed{
	{Username: "mrodriguez", DisplayName: "Ms. Rodriguez", Password: "art123", Role: models.RoleTeacher},
	{Username: "mchen", DisplayName: "Mr. Chen", Password: "chess456", Role: models.RoleTeacher},
	{Username: "principal", DisplayName: "Principal Martinez", Password: "admin789", Role: models.RoleAdmin},
}
