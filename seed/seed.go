// Package seed holds the starter directory dataset imported through the
// admin console when standing up a fresh deployment.
package seed

import "findmyrun.app/models"

// Clubs returns the starter listings. Import skips any entry whose name is
// already present, so re-running the import is harmless.
func Clubs() []models.Club {
	return []models.Club{
		{
			Name: "Tower Bridge Road Runners", City: "London", Area: "Bermondsey",
			Lat: 51.5002, Lng: -0.0754,
			Day: "Wednesday", Time: "18:30", Distance: "5-8km",
			MeetingPoint: "Potters Fields Park, by the fountain",
			Description:  "Sociable midweek run along the Thames with river views both directions.",
			Pace:         "mixed", Terrain: "road",
			BeginnerFriendly: true, PostRun: "pub",
			Instagram: "@towerbridgerr", Status: models.StatusApproved,
		},
		{
			Name: "Victoria Park Harriers Social", City: "London", Area: "Hackney",
			Lat: 51.5362, Lng: -0.0395,
			Day: "Tuesday", Time: "19:00", Distance: "5km",
			MeetingPoint: "Victoria Park, Grove Road gate",
			Description:  "Relaxed laps of the park, all abilities welcome, nobody left behind.",
			Pace:         "easy", Terrain: "park",
			BeginnerFriendly: true, DogFriendly: true, PostRun: "cafe",
			Status: models.StatusApproved,
		},
		{
			Name: "Northern Quarter Pacers", City: "Manchester", Area: "Northern Quarter",
			Lat: 53.4839, Lng: -2.2358,
			Day: "Thursday", Time: "18:45", Distance: "6-10km",
			MeetingPoint: "Stevenson Square",
			Description:  "City loops taking in the canals and Castlefield, faster group splits off at halfway.",
			Pace:         "mixed", Terrain: "road",
			Instagram: "@nqpacers", Status: models.StatusApproved,
		},
		{
			Name: "Heaton Park Sunrise Club", City: "Manchester", Area: "Prestwich",
			Lat: 53.5331, Lng: -2.2786,
			Day: "Saturday", Time: "08:00", Distance: "5km",
			MeetingPoint: "Heaton Park main gates",
			Description:  "Early weekend miles before the park fills up, coffee afterwards.",
			Pace:         "easy", Terrain: "park",
			BeginnerFriendly: true, DogFriendly: true, PostRun: "cafe",
			Status: models.StatusApproved,
		},
		{
			Name: "Digbeth Run Crew", City: "Birmingham", Area: "Digbeth",
			Lat: 52.4751, Lng: -1.8829,
			Day: "Monday", Time: "18:30", Distance: "5-7km",
			MeetingPoint: "Custard Factory courtyard",
			Description:  "Street-art routes through the canals and backstreets, social pace.",
			Pace:         "mixed", Terrain: "road",
			BeginnerFriendly: true, PostRun: "pub",
			Instagram: "@digbethruncrew", Status: models.StatusApproved,
		},
		{
			Name: "Meadows Mile Collective", City: "Edinburgh", Area: "The Meadows",
			Lat: 55.9410, Lng: -3.1925,
			Day: "Wednesday", Time: "18:00", Distance: "5km",
			MeetingPoint: "Middle Meadow Walk, south end",
			Description:  "Tree-lined loops with an optional Arthur's Seat extension for the keen.",
			Pace:         "mixed", Terrain: "park",
			BeginnerFriendly: true, Status: models.StatusApproved,
		},
		{
			Name: "Kelvingrove Trail Runners", City: "Glasgow", Area: "West End",
			Lat: 55.8687, Lng: -4.2905,
			Day: "Sunday", Time: "09:30", Distance: "8-12km",
			MeetingPoint: "Kelvingrove Park, Stewart Memorial Fountain",
			Description:  "Longer Sunday effort along the Kelvin walkway, trail shoes recommended in winter.",
			Pace:         "steady", Terrain: "trail",
			DogFriendly: true, PostRun: "cafe", Status: models.StatusApproved,
		},
		{
			Name: "Baltic Triangle Runners", City: "Liverpool", Area: "Baltic Triangle",
			Lat: 53.3960, Lng: -2.9810,
			Day: "Tuesday", Time: "18:30", Distance: "5-8km",
			MeetingPoint: "Cains Brewery Village entrance",
			Description:  "Dockside out-and-backs with a faster group on alternate weeks.",
			Pace:         "mixed", Terrain: "road",
			PostRun: "pub", Instagram: "@balticrunners", Status: models.StatusApproved,
		},
		{
			Name: "Hyde Park Corner Joggers", City: "Leeds", Area: "Headingley",
			Lat: 53.8196, Lng: -1.5680,
			Day: "Thursday", Time: "19:00", Distance: "5km",
			MeetingPoint: "Hyde Park Corner, outside the picture house",
			Description:  "Student-friendly loops around Woodhouse Moor, genuinely all paces.",
			Pace:         "easy", Terrain: "park",
			BeginnerFriendly: true, FemaleOnly: false, Status: models.StatusApproved,
		},
		{
			Name: "Clifton Downs Dashers", City: "Bristol", Area: "Clifton",
			Lat: 51.4640, Lng: -2.6210,
			Day: "Saturday", Time: "09:00", Distance: "6-10km",
			MeetingPoint: "Clifton Suspension Bridge, Leigh Woods side",
			Description:  "Hills and gorge views, with a flat Downs alternative for easier days.",
			Pace:         "steady", Terrain: "mixed",
			DogFriendly: true, PostRun: "cafe", Status: models.StatusApproved,
		},
		{
			Name: "Jesmond Dene Striders", City: "Newcastle", Area: "Jesmond",
			Lat: 54.9860, Lng: -1.5980,
			Day: "Wednesday", Time: "18:15", Distance: "5-7km",
			MeetingPoint: "Jesmond Dene, Pets Corner car park",
			Description:  "Woodland paths and waterfall views ten minutes from the city centre.",
			Pace:         "mixed", Terrain: "trail",
			BeginnerFriendly: true, Status: models.StatusApproved,
		},
		{
			Name: "She Runs Brighton", City: "Brighton", Area: "Hove",
			Lat: 50.8352, Lng: -0.1758,
			Day: "Monday", Time: "18:30", Distance: "5km",
			MeetingPoint: "Hove Lawns, by the beach huts",
			Description:  "Women-only seafront runs in a supportive group, walkers welcome too.",
			Pace:         "easy", Terrain: "road",
			BeginnerFriendly: true, FemaleOnly: true, PostRun: "cafe",
			Instagram: "@sherunsbrighton", Status: models.StatusApproved,
		},
	}
}
