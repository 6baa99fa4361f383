package dashboard

import "time"

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// DefaultDealerModel returns the OEM dealer performance report, stamped with
// the given time.
func DefaultDealerModel(now time.Time) DashboardModel {
	return DashboardModel{
		Title:       "OEM Dealer Performance Dashboard",
		LastUpdated: now,
		Headline: []MetricCard{
			{Label: "North Region", Value: Text("DLR-001")},
			{Label: "Evaluation Score", Value: Text("87/100"), ColorHint: "success"},
			{Label: "Sales | Service | Spares", Value: Text("3S")},
			{Label: "Performance Category", Value: Text("PIP"), ColorHint: "warning"},
		},
		Sections: []Section{
			salesSection(),
			marketSection(),
			manpowerSection(),
			digitalSection(),
			issuesSection(),
		},
	}
}

func salesSection() Section {
	retailTarget := []int{120, 130, 125, 140, 150, 160}
	retailActual := []int{115, 125, 130, 135, 145, 155}
	instTarget := []int{80, 85, 90, 95, 100, 105}
	instActual := []int{75, 80, 85, 90, 95, 100}
	achievement := []int{92, 94, 102, 96, 97, 97}

	rows := make([]Row, len(months))
	for i, month := range months {
		rows[i] = Row{
			"Month":                Text(month),
			"Retail Target":        Int(retailTarget[i]),
			"Retail Actual":        Int(retailActual[i]),
			"Institutional Target": Int(instTarget[i]),
			"Institutional Actual": Int(instActual[i]),
			"Achievement %":        Int(achievement[i]),
		}
	}

	return Section{
		Title:   "Sales Performance",
		Heading: "Sales Performance Dashboard",
		Widgets: []Widget{
			NewChartWidget(Chart{
				Type:     ChartBar,
				Category: "Month",
				Series:   []string{"Retail Target", "Retail Actual"},
				Rows:     rows,
			}, WithTitle("Retail Performance"), WithWidth(8)),
			NewMetricWidget(MetricCard{Label: "Retail Achievement", Value: Text("155/160"), Delta: "97%"}, WithWidth(4)),
			NewChartWidget(Chart{
				Type:     ChartBar,
				Category: "Month",
				Series:   []string{"Institutional Target", "Institutional Actual"},
				Rows:     rows,
			}, WithTitle("Institutional Performance"), WithWidth(8)),
			NewMetricWidget(MetricCard{Label: "Institutional Achievement", Value: Text("100/105"), Delta: "95%"}, WithWidth(4)),
			NewChartWidget(Chart{
				Type:     ChartLine,
				Category: "Month",
				Series:   []string{"Achievement %"},
				Rows:     rows,
			}, WithTitle("Achievement Percentage Trend"), WithWidth(8)),
			NewProgressWidget(ProgressPanel{Value: 96, Label: "Overall Achievement"}, WithWidth(4)),
			NewChartWidget(Chart{
				Type:     ChartBar,
				Category: "Quarter",
				Series:   []string{"Growth %"},
				Rows: []Row{
					{"Quarter": Text("Q1"), "Growth %": Number(8.5)},
					{"Quarter": Text("Q2"), "Growth %": Number(7.2)},
				},
			}, WithTitle("Quarterly Trend"), WithWidth(4)),
		},
	}
}

func marketSection() Section {
	share := [][3]float64{
		{17.5, 22.1, 14.5},
		{17.8, 21.8, 14.8},
		{18.0, 21.5, 15.1},
		{18.1, 21.3, 15.3},
		{18.2, 21.1, 15.5},
		{18.2, 20.9, 15.6},
	}
	shareRows := make([]Row, len(months))
	for i, month := range months {
		shareRows[i] = Row{
			"Month":  Text(month),
			"OEM":    Number(share[i][0]),
			"Comp A": Number(share[i][1]),
			"Comp B": Number(share[i][2]),
		}
	}

	return Section{
		Title:   "Market Analytics",
		Heading: "Market Analytics Dashboard",
		Widgets: []Widget{
			NewMetricWidget(MetricCard{Label: "Volume", Value: Int(12450), Delta: "8.5% vs LY"}, WithTitle("Company Snapshot"), WithWidth(3)),
			NewMetricWidget(MetricCard{Label: "Market Share", Value: Text("18.2%"), Delta: "0.7pp vs LY"}, WithWidth(3)),
			NewMetricWidget(MetricCard{Label: "Retail Mix", Value: Text("62%"), Delta: "4% vs LY"}, WithWidth(3)),
			NewMetricWidget(MetricCard{Label: "Inventory Days", Value: Int(28), Delta: "-3 vs LY"}, WithWidth(3)),
			NewTableWidget(Table{
				Columns: []string{"Brand", "Volume", "Growth LY", "MS Change"},
				Rows: []Row{
					{"Brand": Text("OEM"), "Volume": Int(12450), "Growth LY": Number(8.5), "MS Change": Number(0.7)},
					{"Brand": Text("Competitor A"), "Volume": Int(15200), "Growth LY": Number(5.2), "MS Change": Number(-0.3)},
					{"Brand": Text("Competitor B"), "Volume": Int(9800), "Growth LY": Number(12.1), "MS Change": Number(1.1)},
					{"Brand": Text("Competitor C"), "Volume": Int(8700), "Growth LY": Number(-2.4), "MS Change": Number(-1.5)},
				},
				Formats: map[string]string{
					"Volume":    FormatInteger,
					"Growth LY": FormatPercent,
					"MS Change": FormatSigned,
				},
				Highlights: map[string]Highlight{
					"Growth LY": {Style: HighlightGradient},
				},
			}, WithTitle("Competitor Benchmarking")),
			NewChartWidget(Chart{
				Type:     ChartLine,
				Category: "Month",
				Series:   []string{"OEM", "Comp A", "Comp B"},
				Rows:     shareRows,
			}, WithTitle("Market Share Trend (Last 6 Months)")),
		},
	}
}

func manpowerSection() Section {
	return Section{
		Title:   "Manpower",
		Heading: "Manpower Dashboard",
		Widgets: []Widget{
			NewTableWidget(Table{
				Columns: []string{"Role", "Current", "Required", "Vacancy %"},
				Rows: []Row{
					{"Role": Text("Sales"), "Current": Int(8), "Required": Int(10), "Vacancy %": Int(20)},
					{"Role": Text("Service"), "Current": Int(12), "Required": Int(15), "Vacancy %": Int(20)},
					{"Role": Text("Support"), "Current": Int(5), "Required": Int(6), "Vacancy %": Int(17)},
					{"Role": Text("Management"), "Current": Int(3), "Required": Int(3), "Vacancy %": Int(0)},
				},
				Formats: map[string]string{
					"Current":   FormatInteger,
					"Required":  FormatInteger,
					"Vacancy %": FormatPercent,
				},
				Highlights: map[string]Highlight{
					"Vacancy %": {Style: HighlightBar, Color: "#ff6961"},
				},
			}, WithTitle("Staffing Levels"), WithWidth(6)),
			NewChartWidget(Chart{
				Type:     ChartBar,
				Category: "Program",
				Series:   []string{"Completion %"},
				Rows: []Row{
					{"Program": Text("Sales Excellence"), "Completion %": Int(85)},
					{"Program": Text("Service Protocol"), "Completion %": Int(92)},
					{"Program": Text("DMS Training"), "Completion %": Int(78)},
					{"Program": Text("EV Workshop"), "Completion %": Int(45)},
				},
			}, WithTitle("Training Completion"), WithWidth(6)),
		},
	}
}

func digitalSection() Section {
	enrollment := []int{35, 42, 48, 53, 58, 62}
	rows := make([]Row, len(months))
	for i, month := range months {
		rows[i] = Row{"Month": Text(month), "Enrollment %": Int(enrollment[i])}
	}
	return Section{
		Title:   "Digital Metrics",
		Heading: "Digital Engagement Dashboard",
		Widgets: []Widget{
			NewChartWidget(Chart{
				Type:     ChartArea,
				Category: "Month",
				Series:   []string{"Enrollment %"},
				Rows:     rows,
			}, WithTitle("App Enrollment"), WithWidth(6)),
			NewChartWidget(Chart{
				Type:     ChartBar,
				Category: "Parameter",
				Series:   []string{"Score"},
				Rows: []Row{
					{"Parameter": Text("Timeliness"), "Score": Int(82)},
					{"Parameter": Text("Quality"), "Score": Int(88)},
					{"Parameter": Text("Communication"), "Score": Int(79)},
					{"Parameter": Text("Facility"), "Score": Int(85)},
				},
			}, WithTitle("Service Quality Index"), WithWidth(6)),
			NewMetricWidget(MetricCard{Label: "Current Enrollment", Value: Text("62%"), Delta: "4% MoM growth"}, WithWidth(6)),
		},
	}
}

func issuesSection() Section {
	deviations := []struct{ title, body string }{
		{"Stock Variance", "2.5% below target"},
		{"Sales Target", "15% below Q2 target"},
		{"Service Backlogs", "27 pending cases >7 days"},
		{"Unresolved Complaints", "3 escalated to OEM"},
	}
	widgets := []Widget{
		NewChartWidget(Chart{
			Type:     ChartBar,
			Category: "Type",
			Series:   []string{"Count"},
			Rows: []Row{
				{"Type": Text("Service Delay"), "Count": Int(15), "Resolution %": Int(80)},
				{"Type": Text("Parts Availability"), "Count": Int(22), "Resolution %": Int(65)},
				{"Type": Text("Billing"), "Count": Int(8), "Resolution %": Int(100)},
				{"Type": Text("Quality"), "Count": Int(5), "Resolution %": Int(100)},
			},
		}, WithTitle("Customer Complaints"), WithWidth(6)),
	}
	for i, d := range deviations {
		progress := 75.0
		opts := []WidgetOption{WithWidth(6)}
		if i == 0 {
			opts = append(opts, WithTitle("Deviation Tracking"))
		}
		widgets = append(widgets, NewPanelWidget(ExpandablePanel{
			Title:    d.title,
			Body:     d.body,
			Progress: &progress,
		}, opts...))
	}
	return Section{
		Title:   "Issues Tracking",
		Heading: "Issues & Complaints Dashboard",
		Widgets: widgets,
	}
}
