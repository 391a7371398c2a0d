package main

import (
	"context"
	"fmt"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/planner"
	"github.com/classtrack/classtrack/core/roster"
	"github.com/classtrack/classtrack/storage/record"
)

// seed loads a small demo classroom so a fresh install has something
// to show.
func (cli *commandLine) seed() error {
	ctx := context.Background()

	students := record.NewStudentRepository(cli.store)
	classes := record.NewClassRepository(cli.store)
	assignments := record.NewAssignmentRepository(cli.store)
	grades := record.NewGradeRepository(cli.store)
	atts := record.NewAttendanceRepository(cli.store)
	lessonPlans := record.NewLessonPlanRepository(cli.store)

	newStudents := []roster.NewStudent{
		{FirstName: "Emma", LastName: "Johnson", Email: "emma.johnson@example.com", ParentContact: null.StringFrom("p.johnson@example.com")},
		{FirstName: "Liam", LastName: "Smith", Email: "liam.smith@example.com", ParentContact: null.StringFrom("p.smith@example.com")},
		{FirstName: "Olivia", LastName: "Davis", Email: "olivia.davis@example.com"},
		{FirstName: "Noah", LastName: "Wilson", Email: "noah.wilson@example.com", Notes: null.StringFrom("Needs extra reading support")},
	}
	ids := make([]string, 0, len(newStudents))
	for _, ns := range newStudents {
		s, err := students.CreateStudent(ctx, ns)
		if err != nil {
			return err
		}
		ids = append(ids, s.ID)
	}

	math, err := classes.CreateClass(ctx, roster.NewClass{
		Name:       "Math 101",
		Subject:    "Mathematics",
		Period:     "1st Period",
		Room:       "204",
		Time:       "9:00 AM",
		Days:       []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		StudentIDs: ids,
	})
	if err != nil {
		return err
	}
	_, err = classes.CreateClass(ctx, roster.NewClass{
		Name:       "Earth Science",
		Subject:    "Science",
		Period:     "3rd Period",
		Room:       "112",
		Time:       "11:15 AM",
		Days:       []time.Weekday{time.Tuesday, time.Thursday},
		StudentIDs: ids[:2],
	})
	if err != nil {
		return err
	}

	today := core.DateOnly(time.Now())
	quiz, err := assignments.CreateAssignment(ctx, gradebook.NewAssignment{
		ClassID:  math.ID,
		Title:    "Chapter 5 Quiz",
		Category: "Quiz",
		Points:   50,
		DueDate:  today.AddDate(0, 0, 3),
	})
	if err != nil {
		return err
	}
	_, err = assignments.CreateAssignment(ctx, gradebook.NewAssignment{
		ClassID:  math.ID,
		Title:    "Fractions Worksheet",
		Category: "Homework",
		Points:   20,
		DueDate:  today.AddDate(0, 0, 7),
	})
	if err != nil {
		return err
	}

	for i, score := range []float64{45, 38, 48, 29} {
		_, err = grades.CreateGrade(ctx, gradebook.NewGrade{
			StudentID:     ids[i],
			AssignmentID:  quiz.ID,
			Score:         score,
			SubmittedDate: today.AddDate(0, 0, -1),
		})
		if err != nil {
			return err
		}
	}

	statuses := []attendance.Status{
		attendance.StatusPresent, attendance.StatusPresent,
		attendance.StatusLate, attendance.StatusAbsent,
	}
	for i, status := range statuses {
		_, err = atts.CreateRecord(ctx, attendance.NewRecord{
			StudentID: ids[i],
			Date:      today,
			Status:    status,
		})
		if err != nil {
			return err
		}
	}

	_, err = lessonPlans.CreateLessonPlan(ctx, planner.NewLessonPlan{
		ClassID:    math.ID,
		Date:       today.AddDate(0, 0, 1),
		Title:      "Introducing Fractions",
		Objectives: []string{"Understand numerators and denominators", "Compare simple fractions"},
		Activities: []string{"Fraction strips warm-up", "Group practice problems"},
		Materials:  []string{"Fraction strips", "Worksheet packet"},
		Homework:   null.StringFrom("Worksheet problems 1-10"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("seeded %d students, 2 classes, 2 assignments\n", len(ids))
	return nil
}
