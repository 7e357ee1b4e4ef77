package vacation

// SampleCSV is the fixed data set the vacations binary normalizes.
const SampleCSV = `"Employee Id","Employee Name","Department","Year","Vacation Days"
00012,"Luke Ye",Sales,2011,6
00013,"Mark Brown",Marketing,2012,2
00016,"James Tevlin",Engineering,2011,4
00017,"Ross Becker",HR,2012,1
00012,"Luke Ye",Sales,2013,2
00014,"John Smith",Management,2011,10
00013,"Mark Brown",Marketing,2012,5
00016,"James Tevlin",Engineering,2012,3
00017,"Ross Becker",HR,2013,2
00017,"Ross Becker",HR,2012,3
00015,"Mark Brown",Marketing,2013,8
00012,"Luke Ye",Sales,2012,1
00014,"John Smith",Management,2011,3
00015,"Mark Brown",Marketing,2014,2`
