package domain

// DayRecord is the immutable summary of one closed day.
// Fields are ordered to minimize memory padding.
type DayRecord struct {
	Date                string   `json:"date"`                       // lastActiveDate of the closed day
	Diary               string   `json:"diary"`                      // Diary text as written
	CompletedTaskTitles []string `json:"completedTaskTitles"`        // Titles of completed non-filler tasks
	CompletedPlanIDs    []string `json:"completedPlanIds,omitempty"` // Plans whose instances were completed
	BaseMax             int      `json:"baseMax"`                    // Capacity before the close adjustment
	FinalBalance        int      `json:"finalBalance"`               // Pool minus completed cost, may be negative
	TasksCompleted      int      `json:"tasksCompleted"`             // Completed tasks, filler included
	TotalCostConsumed   int      `json:"totalCostConsumed"`          // Σcost of completed tasks
	Awakening           bool     `json:"awakening"`                  // FinalBalance < 0
}
