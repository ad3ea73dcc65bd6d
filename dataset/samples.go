package dataset

// Employees returns the sample employee table. Alice Smith and Alice
// Williams share an age so sorts by age exercise tie handling.
func Employees() []Employee {
	return []Employee{
		{Name: "Alice Smith", Age: 34, Salary: 75000.00},
		{Name: "Charlie Brown", Age: 22, Salary: 55000.00},
		{Name: "Bob Johnson", Age: 41, Salary: 120000.00},
		{Name: "Alice Williams", Age: 34, Salary: 62000.00},
	}
}

// Products returns the sample product catalog.
func Products() []Product {
	return []Product{
		{Name: "Laptop Pro", Category: "Electronics", Price: 1500.00},
		{Name: "Mouse Pad XL", Category: "Accessories", Price: 15.50},
		{Name: "4K Monitor", Category: "Electronics", Price: 450.00},
		{Name: "Mechanical Keyboard", Category: "Accessories", Price: 130.00},
		{Name: "Java Book", Category: "Books", Price: 55.00},
		{Name: "Wireless Mouse", Category: "Accessories", Price: 45.00},
		{Name: "E-Reader", Category: "Electronics", Price: 280.00},
		{Name: "Algorithm Guide", Category: "Books", Price: 72.50},
	}
}

// Students returns the sample exam results.
func Students() []Student {
	return []Student{
		{Name: "Jake P.", Marks: 88, Subject: "Physics"},
		{Name: "Maya K.", Marks: 72, Subject: "Chemistry"},
		{Name: "Leo T.", Marks: 95, Subject: "Physics"},
		{Name: "Zoe A.", Marks: 68, Subject: "Math"},
		{Name: "Kai W.", Marks: 80, Subject: "Math"},
		{Name: "Mia B.", Marks: 76, Subject: "Chemistry"},
	}
}
