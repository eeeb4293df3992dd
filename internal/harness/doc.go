// Package harness runs scenario checks against the records store.
//
// A scenario is a YAML file listing store operations and the outcomes they
// must produce, followed by assertions on the final database.
//
// # Scenario Format
//
//	name: enroll_and_join
//	description: "Enrolled students and courses are visible from both sides"
//	setup:
//	  - op: add_department
//	    args: { dept_id: CS, name: Computer Science, head: Dr. X, building: A, contact_email: cs@u.edu }
//	flow:
//	  - op: enroll
//	    args: { student_id: S001, course_id: CS101, enrollment_date: "2024-09-01" }
//	    expect: { status: ok }
//	  - op: student_courses
//	    args: { student_id: S001 }
//	    expect: { ids: [CS101] }
//	assertions:
//	  - type: count
//	    table: enrollments
//	    count: 1
//	  - type: ids
//	    op: course_students
//	    args: { course_id: CS101 }
//	    ids: [S001]
//	  - type: final_state
//	    table: enrollments
//	    where: { student_id: S001 }
//	    expect: { course_id: CS101 }
//
// # Operations
//
// Writes (add_*, update_student, delete_*, enroll) report a status of ok,
// conflict or not_found. Point reads (get_*) report found and the record.
// Listings (list_*, student_courses, course_students) report ids in the
// store's order.
//
// Setup steps must all succeed. Every scenario runs on its own in-memory
// database.
//
// # Assertion Types
//
//   - count: a table holds exactly N rows
//   - ids: a listing operation returns exactly these ids, in order
//   - final_state: a row selected by where has the expected column values
package harness
