package email

const subjectMeetingProposalFmt = "Meeting proposal for %s"
